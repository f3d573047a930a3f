// Package fixtures builds synthetic, in-memory cross3d.SubdivisionView
// implementations. They exist purely as test and demo scaffolding: they
// satisfy the SubdivisionView contract so pkg/cross3d can be exercised
// without a real slicer's subdivision tree attached. Building one of
// these is not the subdivision tree itself — that remains out of scope
// for this module.
package fixtures

import "github.com/cross3d/prismedge/pkg/cross3d"

// cell is a plain struct implementing cross3d.Cell. Every scenario
// constructor in this package assembles a small slice of these by hand.
type cell struct {
	fromEdge, toEdge cross3d.Segment2D
	zMin, zMax       int64
	depth            int
	expanding        bool
	adjacent         [4][]cross3d.CellIndex
}

func (c *cell) Triangle() (cross3d.Segment2D, cross3d.Segment2D) {
	return c.fromEdge, c.toEdge
}

func (c *cell) ZRange() (int64, int64) { return c.zMin, c.zMax }

func (c *cell) Depth() int { return c.depth }

func (c *cell) IsExpanding() bool { return c.expanding }

func (c *cell) Adjacent(d cross3d.Direction) []cross3d.CellIndex {
	return c.adjacent[d]
}

// view is a cross3d.SubdivisionView over a fixed slice of cells, grouped
// into depth-ordered layers at construction time.
type view struct {
	cells  []*cell
	layers [][]cross3d.CellIndex
}

func (v *view) DepthOrdered() [][]cross3d.CellIndex { return v.layers }

func (v *view) Cell(idx cross3d.CellIndex) cross3d.Cell { return v.cells[idx] }

// newView groups cells into DepthOrdered layers by their Depth field,
// preserving each cell's relative order within its own layer (order
// between equal-depth cells is immaterial per spec.md §5, but a stable
// order keeps fixture output deterministic for tests).
func newView(cells []*cell) *view {
	maxDepth := 0
	for _, c := range cells {
		if c.depth > maxDepth {
			maxDepth = c.depth
		}
	}
	layers := make([][]cross3d.CellIndex, maxDepth+1)
	for i, c := range cells {
		layers[c.depth] = append(layers[c.depth], cross3d.CellIndex(i))
	}
	return &view{cells: cells, layers: layers}
}

func seg(x1, y1, x2, y2 int64) cross3d.Segment2D {
	return cross3d.Segment2D{From: cross3d.IntPoint2{X: x1, Y: y1}, To: cross3d.IntPoint2{X: x2, Y: y2}}
}
