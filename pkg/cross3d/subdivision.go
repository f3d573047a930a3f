package cross3d

// SubdivisionView is a read-only façade over the subdivision tree. The
// subdivision tree itself is out of scope for this package (see
// spec.md §1); this interface is the whole of the contract the tree
// owner must satisfy. Implementations must be frozen before Construct
// is called and must not change while an EdgeNetwork built from them
// is in use.
type SubdivisionView interface {
	// DepthOrdered returns layers of leaf cells grouped by depth, with
	// layer k holding every leaf cell at depth k. Construct walks this
	// finest-first by reversing it.
	DepthOrdered() [][]CellIndex

	// Cell returns the (stable) cell at the given index.
	Cell(idx CellIndex) Cell
}

// Cell is a leaf of the subdivision: a triangular prism with a Z-range.
type Cell interface {
	// Triangle returns the cell's 2D footprint side edges: fromEdge is
	// the LEFT side, toEdge is the RIGHT side, both ordered segments.
	Triangle() (fromEdge, toEdge Segment2D)

	// ZRange returns the closed [zMin, zMax] interval of the prism.
	ZRange() (zMin, zMax int64)

	// Depth returns the subdivision depth; larger is finer.
	Depth() int

	// IsExpanding flips the Z-order of the two triangle side-edge
	// endpoints; it encodes which diagonal of the prism the
	// oscillation climbs.
	IsExpanding() bool

	// Adjacent returns the ordered neighbor list in direction d. For
	// LEFT/RIGHT the list runs along the edge; for UP/DOWN it runs
	// left-to-right across the upper/lower surface. An empty list
	// means the cell has no neighbor in that direction (it is on a
	// lateral boundary, or the top/bottom layer).
	Adjacent(d Direction) []CellIndex
}

// neighborDepth returns the depth of the first neighbor of cell in
// direction d, or a sentinel coarser than any real depth if there is no
// neighbor. A missing LEFT/RIGHT neighbor means idx sits on the lateral
// boundary of the subdivision: there is nothing finer or equal on the
// other side to contest ownership with, so the cell must default to
// owning that side's edge. A literal max-value sentinel (mirroring the
// original's std::numeric_limits<char>::max(), used there to mean
// "never satisfied" for a comparison that runs the other way) would
// instead make a boundary cell own neither edge, contradicting the
// single-cell seed scenario in spec.md §8.
const noNeighborDepth = -1

func neighborDepth(view SubdivisionView, cell Cell, d Direction) int {
	neighbors := cell.Adjacent(d)
	if len(neighbors) == 0 {
		return noNeighborDepth
	}
	return view.Cell(neighbors[0]).Depth()
}
