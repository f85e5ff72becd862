package allen

import "testing"

func TestRelSetBasics(t *testing.T) {
	tests := []struct {
		name string
		set  RelSet
		want []Relation
	}{
		{"empty", EMPTY, nil},
		{"singleton before", SetBefore, []Relation{Before}},
		{"before+after", SetBefore | SetAfter, []Relation{Before, After}},
		{"all", ALL, []Relation{Before, After, During, Contains, Overlaps, OverlappedBy, Meets, MetBy, Starts, StartedBy, Finishes, FinishedBy, Equals}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.want {
				if !tt.set.Contains(r) {
					t.Errorf("%v should contain %v", tt.set, r)
				}
			}
			if tt.set.Count() != len(tt.want) {
				t.Errorf("Count() = %d, want %d", tt.set.Count(), len(tt.want))
			}
		})
	}
}

func TestRelSetIsEmpty(t *testing.T) {
	if !EMPTY.IsEmpty() {
		t.Error("EMPTY.IsEmpty() = false, want true")
	}
	if ALL.IsEmpty() {
		t.Error("ALL.IsEmpty() = true, want false")
	}
	if SetBefore.IsEmpty() {
		t.Error("SetBefore.IsEmpty() = true, want false")
	}
}

func TestRelSetUnionIntersect(t *testing.T) {
	a := Of(Before, Meets)
	b := Of(Meets, After)

	union := a.Union(b)
	for _, r := range []Relation{Before, Meets, After} {
		if !union.Contains(r) {
			t.Errorf("union missing %v", r)
		}
	}
	if union.Count() != 3 {
		t.Errorf("union count = %d, want 3", union.Count())
	}

	inter := a.Intersect(b)
	if inter != SetMeets {
		t.Errorf("intersect = %v, want SetMeets", inter)
	}
}

func TestRelSetIsSubset(t *testing.T) {
	if !SetBefore.IsSubset(ALL) {
		t.Error("SetBefore should be subset of ALL")
	}
	if !EMPTY.IsSubset(SetBefore) {
		t.Error("EMPTY should be a subset of everything")
	}
	if ALL.IsSubset(SetBefore) {
		t.Error("ALL should not be a subset of SetBefore")
	}
}

// Algebraic laws that must hold for any correct RelSet implementation,
// checked for every basic relation and for unions of basic relations.
func TestRelSetInverseInvolution(t *testing.T) {
	for s := RelSet(0); s <= ALL; s++ {
		if got := s.Inverse().Inverse(); got != s {
			t.Fatalf("inverse(inverse(%v)) = %v, want %v", s, got, s)
		}
	}
}

func TestRelSetInverseFixedPoints(t *testing.T) {
	if EMPTY.Inverse() != EMPTY {
		t.Error("inverse(EMPTY) != EMPTY")
	}
	if ALL.Inverse() != ALL {
		t.Error("inverse(ALL) != ALL")
	}
	if SetEquals.Inverse() != SetEquals {
		t.Error("inverse({equals}) != {equals}")
	}
}

func TestRelSetInverseTable(t *testing.T) {
	pairs := []struct{ a, b Relation }{
		{Before, After},
		{During, Contains},
		{Overlaps, OverlappedBy},
		{Meets, MetBy},
		{Starts, StartedBy},
		{Finishes, FinishedBy},
		{Equals, Equals},
	}
	for _, p := range pairs {
		if Of(p.a).Inverse() != Of(p.b) {
			t.Errorf("inverse(%v) = %v, want %v", p.a, Of(p.a).Inverse(), Of(p.b))
		}
		if Of(p.b).Inverse() != Of(p.a) {
			t.Errorf("inverse(%v) = %v, want %v", p.b, Of(p.b).Inverse(), Of(p.a))
		}
	}
}

func TestRelSetNames(t *testing.T) {
	got := Of(Before, MetBy).Names()
	want := []string{"before", "met by"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
