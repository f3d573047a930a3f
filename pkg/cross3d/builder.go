package cross3d

// addCellEdges decides, per invariant OWN, which of LEFT/RIGHT idx
// owns, and builds the owned sides. A cell owns its LEFT edge iff its
// depth is strictly greater than its LEFT neighbor's; it owns its
// RIGHT edge iff its depth is greater than *or equal to* its RIGHT
// neighbor's. The asymmetric >/>= breaks ties deterministically: when
// two equal-depth cells meet, the left one owns the shared edge.
func (n *EdgeNetwork) addCellEdges(idx CellIndex) {
	cell := n.view.Cell(idx)

	if cell.Depth() > neighborDepth(n.view, cell, Left) {
		n.addCellEdge(idx, cell, Left)
	}
	if cell.Depth() >= neighborDepth(n.view, cell, Right) {
		n.addCellEdge(idx, cell, Right)
	}
}

// addCellEdge builds the initial two-point polyline for the given
// owned side, applies both oscillation constraints, and stores the
// result.
func (n *EdgeNetwork) addCellEdge(idx CellIndex, cell Cell, side Direction) {
	fromEdge, toEdge := cell.Triangle()
	edge := fromEdge
	if side == Right {
		edge = toEdge
	}
	if !cell.IsExpanding() {
		edge.From, edge.To = edge.To, edge.From
	}

	zMin, zMax := cell.ZRange()
	polyline := []IntPoint3{
		{X: edge.From.X, Y: edge.From.Y, Z: zMin},
		{X: edge.To.X, Y: edge.To.Y, Z: zMax},
	}

	n.applyOscillationConstraint(idx, cell, side, Up, &polyline)
	n.applyOscillationConstraint(idx, cell, side, Down, &polyline)

	n.mapping(side)[idx] = polyline
}

// applyOscillationConstraint pulls polyline's V-ward endpoint to match
// the corresponding endpoint of a finer neighbor's already-built edge,
// so the zig-zag across layers is continuous. The constraint only
// applies when a neighbor is strictly finer than idx, and the edge it
// reads always belongs to a strictly finer cell; cells are visited
// depth-descending (finest first), so that edge has already been built.
func (n *EdgeNetwork) applyOscillationConstraint(idx CellIndex, cell Cell, side, vertical Direction, polyline *[]IntPoint3) {
	vNeighbors := cell.Adjacent(vertical)
	if len(vNeighbors) == 0 {
		return // top or bottom layer: no oscillation constraint
	}

	vIdx := front(vNeighbors, side == Left)
	vCell := n.view.Cell(vIdx)

	vSideNeighbors := vCell.Adjacent(side)
	if len(vSideNeighbors) == 0 {
		return // vertical neighbor has no lateral neighbor of its own: nothing to align against
	}
	vsIdx := front(vSideNeighbors, vertical == Up)
	vsCell := n.view.Cell(vsIdx)

	if cell.Depth() >= maxDepth(vCell.Depth(), vsCell.Depth()) {
		return // idx is at least as fine as both: its own endpoint is authoritative
	}

	var reference []IntPoint3
	var ok bool
	if vCell.Depth() > vsCell.Depth() || (side == Right && vCell.Depth() == vsCell.Depth()) {
		reference, ok = n.mapping(side)[vIdx]
	} else {
		reference, ok = n.mapping(side.Opposite())[vsIdx]
	}
	if !ok {
		violate(ViolationMissingOwnership, idx, "reference edge for %s/%s oscillation constraint not found", side, vertical)
	}

	destination := reference[len(reference)-1]
	if vertical == Up {
		destination = reference[0]
	}

	n.adjustEdgeEnd(polyline, vertical, destination)
}

// front selects the front element of neighbors when wantFront is true,
// the back element otherwise.
func front(neighbors []CellIndex, wantFront bool) CellIndex {
	if wantFront {
		return neighbors[0]
	}
	return neighbors[len(neighbors)-1]
}

func maxDepth(a, b int) int {
	if a > b {
		return a
	}
	return b
}
