package fixtures

import (
	"sort"

	"github.com/cross3d/prismedge/pkg/cross3d"
	"github.com/cross3d/prismedge/pkg/kernel/sdfx"
	"github.com/dhconnelly/rtreego"
)

// GridParams configures a generalized uniform-depth grid fixture: a row
// of Columns side-by-side cells, repeated across Layers vertically
// stacked Z-levels, all at the same subdivision Depth. It exists for
// property-style sweeps over P1-P5 and for the demo command, not to
// reproduce any one seed scenario.
type GridParams struct {
	Columns     int
	Layers      int
	Depth       int
	CellWidth   float64
	LayerHeight int64
	Expanding   bool
}

// gridIndexDims is the dimensionality of the (column, layer) index space
// the grid's adjacency is derived over, not the geometry's own 3
// dimensions.
const gridIndexDims = 2

// gridCell is the rtreego.Spatial wrapper used only to derive adjacency
// from grid position; it carries no geometry of its own.
type gridCell struct {
	idx        cross3d.CellIndex
	col, layer int
}

func (g *gridCell) Bounds() rtreego.Rect {
	r, err := rtreego.NewRect(rtreego.Point{float64(g.col), float64(g.layer)}, []float64{1, 1})
	if err != nil {
		panic(err)
	}
	return r
}

// Grid builds a Columns x Layers uniform-depth grid. The footprint
// width is derived from a kernel.Kernel box solid's bounding box rather
// than a literal constant, so the fixture sizes its prism footprints
// from swept geometry the way pkg/fixtures is meant to. Adjacency is
// derived by indexing every cell's (column, layer) position into an
// R-tree and querying the exact neighboring grid cell on each side,
// rather than hand-computed index arithmetic, so the same approach
// would generalize to an irregularly populated layout.
func Grid(params GridParams) cross3d.SubdivisionView {
	k := sdfx.New()
	box := k.Box(params.CellWidth, params.CellWidth, float64(params.LayerHeight))
	min, max := box.BoundingBox()
	width := int64(max[0] - min[0])

	index := func(col, layer int) cross3d.CellIndex {
		return cross3d.CellIndex(layer*params.Columns + col)
	}

	cells := make([]*cell, params.Columns*params.Layers)
	tree := rtreego.NewTree(gridIndexDims, 2, 5)

	for layer := 0; layer < params.Layers; layer++ {
		zMin := int64(layer) * params.LayerHeight
		zMax := zMin + params.LayerHeight
		for col := 0; col < params.Columns; col++ {
			left := int64(col) * width
			right := left + width
			c := &cell{
				fromEdge:  seg(left, 0, left, width),
				toEdge:    seg(right, 0, right, width),
				zMin:      zMin,
				zMax:      zMax,
				depth:     params.Depth,
				expanding: params.Expanding,
			}
			cells[index(col, layer)] = c
			tree.Insert(&gridCell{idx: index(col, layer), col: col, layer: layer})
		}
	}

	probe := func(col, layer int) []cross3d.CellIndex {
		bb, err := rtreego.NewRect(rtreego.Point{float64(col), float64(layer)}, []float64{1, 1})
		if err != nil {
			return nil
		}
		matches := tree.SearchIntersect(bb)
		found := make([]*gridCell, 0, len(matches))
		for _, s := range matches {
			found = append(found, s.(*gridCell))
		}
		sort.Slice(found, func(i, j int) bool {
			if found[i].layer != found[j].layer {
				return found[i].layer < found[j].layer
			}
			return found[i].col < found[j].col
		})
		out := make([]cross3d.CellIndex, len(found))
		for i, f := range found {
			out[i] = f.idx
		}
		return out
	}

	for layer := 0; layer < params.Layers; layer++ {
		for col := 0; col < params.Columns; col++ {
			c := cells[index(col, layer)]
			if col > 0 {
				c.adjacent[cross3d.Left] = probe(col-1, layer)
			}
			if col < params.Columns-1 {
				c.adjacent[cross3d.Right] = probe(col+1, layer)
			}
			if layer > 0 {
				c.adjacent[cross3d.Down] = probe(col, layer-1)
			}
			if layer < params.Layers-1 {
				c.adjacent[cross3d.Up] = probe(col, layer+1)
			}
		}
	}

	return newView(cells)
}
