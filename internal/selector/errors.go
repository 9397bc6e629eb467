package selector

import "fmt"

// DuplicatePartError reports a second Element, ID, or PseudoElement call
// on a chain that already carries that part. The chain cannot be
// repaired; callers must start over from an earlier builder value.
type DuplicatePartError struct {
	Kind PartKind
}

func (e *DuplicatePartError) Error() string {
	return fmt.Sprintf("selector: %s part may occur at most once per selector", e.Kind)
}

// Is reports whether target is a DuplicatePartError for the same kind.
// A target with a negative Kind matches any duplicate error.
func (e *DuplicatePartError) Is(target error) bool {
	t, ok := target.(*DuplicatePartError)
	if !ok {
		return false
	}

	return t.Kind < 0 || t.Kind == e.Kind
}

// OrderViolationError reports a part added out of canonical order: its
// kind ranks earlier than the most recently added kind.
type OrderViolationError struct {
	Kind PartKind // the rejected part
	Last PartKind // the kind most recently added to the chain
}

func (e *OrderViolationError) Error() string {
	return fmt.Sprintf("selector: %s part must precede %s part", e.Kind, e.Last)
}

// Is reports whether target is an OrderViolationError for the same pair
// of kinds. A target with negative kinds matches any order violation.
func (e *OrderViolationError) Is(target error) bool {
	t, ok := target.(*OrderViolationError)
	if !ok {
		return false
	}

	return (t.Kind < 0 || t.Kind == e.Kind) && (t.Last < 0 || t.Last == e.Last)
}

// AnyDuplicatePart matches every DuplicatePartError via errors.Is.
func AnyDuplicatePart() error { return &DuplicatePartError{Kind: -1} }

// AnyOrderViolation matches every OrderViolationError via errors.Is.
func AnyOrderViolation() error { return &OrderViolationError{Kind: -1, Last: -1} }
