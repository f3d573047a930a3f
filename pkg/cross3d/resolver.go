package cross3d

// getEdge returns the polyline governing idx's side s at its v end,
// resolving, per invariant OWN, whether idx or its lateral-s neighbor
// actually owns that edge.
func (n *EdgeNetwork) getEdge(idx CellIndex, s, v Direction) []IntPoint3 {
	cell := n.view.Cell(idx)
	neighbors := cell.Adjacent(s)
	if len(neighbors) == 0 {
		// No lateral-s neighbor at all: idx sits on that lateral boundary
		// and owns its own s edge outright, same as invariant OWN's
		// no-neighbor default.
		edge, ok := n.mapping(s)[idx]
		if !ok {
			violate(ViolationMissingOwnership, idx, "expected to own its %s edge", s)
		}
		return edge
	}
	neighborIdx := front(neighbors, v == Down)
	neighbor := n.view.Cell(neighborIdx)

	if neighbor.Depth() > cell.Depth() || (s == Left && neighbor.Depth() == cell.Depth()) {
		edge, ok := n.mapping(s.Opposite())[neighborIdx]
		if !ok {
			violate(ViolationMissingOwnership, idx, "%s neighbor %d expected to own opposite edge", s, neighborIdx)
		}
		return edge
	}
	edge, ok := n.mapping(s)[idx]
	if !ok {
		violate(ViolationMissingOwnership, idx, "expected to own its %s edge", s)
	}
	return edge
}

// preventZDiscontinuity fixes the Z-discontinuity introduced when two
// equal-depth cells above idx (in direction v) share a vertical edge
// whose lower endpoint lies in the interior of idx's top surface
// rather than at a footprint corner. Only the leftmost/rightmost
// neighbor pair is considered, consistent with the source
// implementation: the subdivision invariants are assumed to never
// produce more than two equal-depth cells meeting a single coarser
// cell in this configuration (spec.md §9 Open Questions).
func (n *EdgeNetwork) preventZDiscontinuity(idx CellIndex, v Direction) {
	cell := n.view.Cell(idx)
	neighbors := cell.Adjacent(v)
	if len(neighbors) < 2 {
		return
	}

	fromEdge := n.getEdge(idx, Left, v)
	from := endpointAt(fromEdge, v)
	toEdge := n.getEdge(idx, Right, v)
	to := endpointAt(toEdge, v)
	crossLine := Segment2D{From: from.XY(), To: to.XY()}

	// Both cells above are the same depth, so the left one (front) owns
	// the edge between them that causes the discontinuity.
	leftmostIdx := neighbors[0]
	leftmost := n.view.Cell(leftmostIdx)

	_, troubleEdge := leftmost.Triangle()
	intersection := intersect(troubleEdge, crossLine)

	zMin, zMax := leftmost.ZRange()
	z := zMax
	if v == Up {
		z = zMin
	}
	destination := IntPoint3{X: intersection.X, Y: intersection.Y, Z: z}

	troublePolyline, ok := n.rightEdges[leftmostIdx]
	if !ok {
		violate(ViolationMissingOwnership, leftmostIdx, "leftmost upper neighbor must own its right edge")
	}
	n.adjustEdgeEnd(&troublePolyline, v.Opposite(), destination)
	n.rightEdges[leftmostIdx] = troublePolyline
}

// endpointAt returns the polyline endpoint on the side of direction v:
// the last element for UP, the first for DOWN.
func endpointAt(polyline []IntPoint3, v Direction) IntPoint3 {
	if v == Up {
		return polyline[len(polyline)-1]
	}
	return polyline[0]
}

// intersect returns the 2D intersection point of two segments,
// assumed (by construction, from the subdivision's geometry) to cross
// rather than run parallel.
func intersect(a, b Segment2D) IntPoint2 {
	x1, y1 := float64(a.From.X), float64(a.From.Y)
	x2, y2 := float64(a.To.X), float64(a.To.Y)
	x3, y3 := float64(b.From.X), float64(b.From.Y)
	x4, y4 := float64(b.To.X), float64(b.To.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		// Degenerate (parallel) input: fall back to the crossing
		// line's From endpoint.
		return b.From
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	x := x1 + t*(x2-x1)
	y := y1 + t*(y2-y1)
	return IntPoint2{X: int64(x + 0.5*sign(x)), Y: int64(y + 0.5*sign(y))}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
