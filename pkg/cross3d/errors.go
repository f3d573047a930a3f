package cross3d

import "fmt"

// ViolationKind names which precondition failed. All of them are
// programming errors per spec.md §7: failures on an already-frozen,
// well-formed subdivision are fatal and not user-recoverable.
type ViolationKind int

const (
	// ViolationMissingOwnership means an edge expected in left_edges
	// or right_edges was not found there — a violation of invariant
	// OWN.
	ViolationMissingOwnership ViolationKind = iota
	// ViolationZOutOfRange means GetCellEdgeLocation was called with a
	// z outside the queried edge's polyline range.
	ViolationZOutOfRange
	// ViolationDegenerateSample means two consecutive polyline samples
	// share a Z value, which invariant POLY forbids.
	ViolationDegenerateSample
	// ViolationShallowInclination means a stored segment's inclination
	// is at or below the configured threshold (debug builds only).
	ViolationShallowInclination
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationMissingOwnership:
		return "missing ownership"
	case ViolationZOutOfRange:
		return "z out of range"
	case ViolationDegenerateSample:
		return "degenerate sample"
	case ViolationShallowInclination:
		return "shallow inclination"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// InvariantViolation is the typed panic value used whenever a
// precondition on the (already validated) subdivision does not hold.
// It is a panic value, not a returned error, because spec.md §7 treats
// every such case as an unreachable assertion on well-formed input —
// there is no recoverable, user-reported error path in this package.
type InvariantViolation struct {
	Kind   ViolationKind
	Cell   CellIndex
	Detail string
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("cross3d: %s (cell %d): %s", v.Kind, v.Cell, v.Detail)
}

func violate(kind ViolationKind, cell CellIndex, format string, args ...any) {
	panic(InvariantViolation{Kind: kind, Cell: cell, Detail: fmt.Sprintf(format, args...)})
}
