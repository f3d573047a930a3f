package cross3d

import (
	"log"
	"time"

	"github.com/samber/lo"
)

// EdgeNetwork holds the two edge-ownership mappings produced by
// Construct. It is built in two passes and thereafter immutable: every
// read in this package targets a previously completed (finer-depth)
// cell, and every write targets the cell currently being processed, so
// construction is single-threaded by nature and the finished mappings
// may be read by any number of concurrent readers without locks.
type EdgeNetwork struct {
	view   SubdivisionView
	params Params

	leftEdges  map[CellIndex][]IntPoint3
	rightEdges map[CellIndex][]IntPoint3
}

// Construct eagerly builds both edge mappings for every leaf cell in
// view. There is no lazy evaluation: by the time Construct returns,
// every cell that owns a LEFT or RIGHT edge (per invariant OWN) has
// its polyline stored.
func Construct(view SubdivisionView, params Params) *EdgeNetwork {
	start := time.Now()

	n := &EdgeNetwork{
		view:       view,
		params:     params,
		leftEdges:  make(map[CellIndex][]IntPoint3),
		rightEdges: make(map[CellIndex][]IntPoint3),
	}

	layers := view.DepthOrdered()
	for _, layer := range lo.Reverse(append([][]CellIndex{}, layers...)) {
		for _, idx := range layer {
			n.addCellEdges(idx)
		}
	}
	for _, layer := range layers {
		for _, idx := range layer {
			n.preventZDiscontinuity(idx, Up)
			n.preventZDiscontinuity(idx, Down)
		}
	}

	log.Printf("cross3d: built edge network for %d layers in %s", len(layers), time.Since(start))
	debugCheckInclinations(n)
	return n
}

// LeftEdge returns the stored LEFT-edge polyline for idx, if idx owns
// its LEFT edge.
func (n *EdgeNetwork) LeftEdge(idx CellIndex) ([]IntPoint3, bool) {
	p, ok := n.leftEdges[idx]
	return p, ok
}

// RightEdge returns the stored RIGHT-edge polyline for idx, if idx owns
// its RIGHT edge.
func (n *EdgeNetwork) RightEdge(idx CellIndex) ([]IntPoint3, bool) {
	p, ok := n.rightEdges[idx]
	return p, ok
}

// mapping returns the mapping that owns side s.
func (n *EdgeNetwork) mapping(s Direction) map[CellIndex][]IntPoint3 {
	if s == Left {
		return n.leftEdges
	}
	return n.rightEdges
}
