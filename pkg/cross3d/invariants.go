package cross3d

import "math"

// ViolationSeverity mirrors the teacher repo's tiered validation
// pattern (errors vs. warnings) applied here to a read-only pass over
// an already-built EdgeNetwork: every Finding is a violation of one of
// P1-P5, there are no "warnings" at this layer since all five
// properties are hard invariants, but the severity field is kept so a
// caller can distinguish a hard violation from an informational note
// emitted by future checks without changing the return type.
type ViolationSeverity int

const (
	SeverityViolation ViolationSeverity = iota
	SeverityNote
)

func (s ViolationSeverity) String() string {
	if s == SeverityNote {
		return "note"
	}
	return "violation"
}

// Finding describes one invariant check result.
type Finding struct {
	Property string
	Cell     CellIndex
	Severity ViolationSeverity
	Message  string
}

// CheckInvariants walks both edge mappings and reports every violation
// of P1 (ownership exclusivity is enforced structurally by construction
// and re-checked here), P2 (Z-monotonicity), P3 (boundary match), P4
// (inclination), and P5 (continuity at oscillation-constrained joins).
// It never panics; it is meant for tests and optional verbose
// diagnostics, unlike the panic-based checks in errors.go that guard
// the construction and query paths themselves.
func CheckInvariants(view SubdivisionView, n *EdgeNetwork) []Finding {
	var findings []Finding

	seen := make(map[edgeKey]bool)
	for idx, polyline := range n.leftEdges {
		findings = append(findings, checkPolyline(view, idx, Left, polyline, n.params)...)
		seen[edgeKey{idx, Left}] = true
	}
	for idx, polyline := range n.rightEdges {
		findings = append(findings, checkPolyline(view, idx, Right, polyline, n.params)...)
		seen[edgeKey{idx, Right}] = true
	}

	findings = append(findings, checkOwnershipExclusivity(view, n, seen)...)
	findings = append(findings, checkContinuity(view, n)...)
	return findings
}

// checkContinuity verifies P5: for every cell/side whose edge was
// constrained against a coarser vertical neighbor during construction
// (the same selection logic as applyOscillationConstraint, run here
// read-only), the resulting endpoint's XY is bit-identical to the
// reference edge's corresponding endpoint.
func checkContinuity(view SubdivisionView, n *EdgeNetwork) []Finding {
	var findings []Finding
	for _, layer := range view.DepthOrdered() {
		for _, idx := range layer {
			cell := view.Cell(idx)
			for _, side := range []Direction{Left, Right} {
				polyline, ok := n.mapping(side)[idx]
				if !ok {
					continue
				}
				for _, vertical := range []Direction{Up, Down} {
					findings = append(findings, checkContinuityAt(view, n, idx, cell, side, vertical, polyline)...)
				}
			}
		}
	}
	return findings
}

func checkContinuityAt(view SubdivisionView, n *EdgeNetwork, idx CellIndex, cell Cell, side, vertical Direction, polyline []IntPoint3) []Finding {
	vNeighbors := cell.Adjacent(vertical)
	if len(vNeighbors) == 0 {
		return nil
	}
	vIdx := front(vNeighbors, side == Left)
	vCell := view.Cell(vIdx)
	vSideNeighbors := vCell.Adjacent(side)
	if len(vSideNeighbors) == 0 {
		return nil
	}
	vsIdx := front(vSideNeighbors, vertical == Up)
	vsCell := view.Cell(vsIdx)

	if cell.Depth() >= maxDepth(vCell.Depth(), vsCell.Depth()) {
		return nil
	}

	var reference []IntPoint3
	var ok bool
	if vCell.Depth() > vsCell.Depth() || (side == Right && vCell.Depth() == vsCell.Depth()) {
		reference, ok = n.mapping(side)[vIdx]
	} else {
		reference, ok = n.mapping(side.Opposite())[vsIdx]
	}
	if !ok {
		return nil
	}

	want := reference[len(reference)-1]
	if vertical == Up {
		want = reference[0]
	}
	got := endpointAt(polyline, vertical)
	if got.XY() != want.XY() {
		return []Finding{{"P5", idx, SeverityViolation, side.String() + "/" + vertical.String() + ": endpoint XY does not match constraining neighbor edge"}}
	}
	return nil
}

type edgeKey struct {
	idx  CellIndex
	side Direction
}

func checkPolyline(view SubdivisionView, idx CellIndex, side Direction, polyline []IntPoint3, params Params) []Finding {
	var findings []Finding

	if len(polyline) < 2 {
		findings = append(findings, Finding{"POLY", idx, SeverityViolation, side.String() + ": polyline has fewer than 2 points"})
		return findings
	}

	cell := view.Cell(idx)
	zMin, zMax := cell.ZRange()
	if polyline[0].Z != zMin {
		findings = append(findings, Finding{"P3", idx, SeverityViolation, side.String() + ": first point Z does not match owner z_min"})
	}
	if polyline[len(polyline)-1].Z != zMax {
		findings = append(findings, Finding{"P3", idx, SeverityViolation, side.String() + ": last point Z does not match owner z_max"})
	}

	for i := 0; i+1 < len(polyline); i++ {
		below, above := polyline[i], polyline[i+1]
		if above.Z <= below.Z {
			findings = append(findings, Finding{"P2", idx, SeverityViolation, side.String() + ": non-increasing Z between consecutive points"})
			continue
		}
		if !aboveInclination(below, above, params.InclinationThresholdDeg) {
			findings = append(findings, Finding{"P4", idx, SeverityViolation, side.String() + ": segment inclination at or below threshold"})
		}
	}
	return findings
}

// checkOwnershipExclusivity re-derives, for every cell and side, which
// side it should own under invariant OWN and confirms the mapping
// agrees — catching both missing and spurious entries.
func checkOwnershipExclusivity(view SubdivisionView, n *EdgeNetwork, seen map[edgeKey]bool) []Finding {
	var findings []Finding
	for _, layer := range view.DepthOrdered() {
		for _, idx := range layer {
			cell := view.Cell(idx)
			ownsLeft := cell.Depth() > neighborDepth(view, cell, Left)
			ownsRight := cell.Depth() >= neighborDepth(view, cell, Right)

			if ownsLeft != seen[edgeKey{idx, Left}] {
				findings = append(findings, Finding{"P1", idx, SeverityViolation, "LEFT ownership mismatch with invariant OWN"})
			}
			if ownsRight != seen[edgeKey{idx, Right}] {
				findings = append(findings, Finding{"P1", idx, SeverityViolation, "RIGHT ownership mismatch with invariant OWN"})
			}
		}
	}
	return findings
}

// aboveInclination reports whether the 3D segment below->above has an
// inclination strictly greater than thresholdDeg off horizontal.
func aboveInclination(below, above IntPoint3, thresholdDeg float64) bool {
	dx := float64(above.X - below.X)
	dy := float64(above.Y - below.Y)
	dz := float64(above.Z - below.Z)
	xy := math.Hypot(dx, dy)
	if xy == 0 {
		return true // vertical segment: maximally inclined
	}
	angle := math.Atan(dz/xy) * 180 / math.Pi
	return angle > thresholdDeg
}
