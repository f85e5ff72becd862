package allen

import "errors"

// Sentinel errors returned by Network mutators. The core never panics;
// every rejected mutation is reported through one of these. An
// inconsistent network is not an error: it is reported by the false
// verdict of PathConsistency.
var (
	// ErrUnknownNode is returned when a Constraint references a node
	// identifier that has not been registered with AddNode.
	ErrUnknownNode = errors.New("allen: unknown node")

	// ErrDuplicateNode is returned by AddNode when the identifier is
	// already registered.
	ErrDuplicateNode = errors.New("allen: node already registered")

	// ErrDuplicateConstraint is returned by AddConstraint when the same
	// ordered pair, or its reverse, already carries an asserted
	// constraint.
	ErrDuplicateConstraint = errors.New("allen: constraint already asserted for this pair")

	// ErrUnknownConstraint is returned by RemoveConstraint when the
	// given constraint is not currently asserted.
	ErrUnknownConstraint = errors.New("allen: constraint not asserted")
)
