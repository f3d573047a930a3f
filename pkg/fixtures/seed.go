package fixtures

import "github.com/cross3d/prismedge/pkg/cross3d"

// UniformSingleCell is seed scenario 1: a single, laterally isolated
// cell. It has no LEFT/RIGHT neighbor in either direction, so under
// invariant OWN it owns both its LEFT and RIGHT edges outright.
func UniformSingleCell(zMin, zMax int64, expanding bool) cross3d.SubdivisionView {
	c := &cell{
		fromEdge:  seg(0, 0, 0, 1000),
		toEdge:    seg(1000, 0, 1000, 1000),
		zMin:      zMin,
		zMax:      zMax,
		depth:     0,
		expanding: expanding,
	}
	return newView([]*cell{c})
}

// TwoStackedSameDepth is seed scenario 2: two laterally isolated cells
// of equal depth, stacked vertically. Neither has a lateral neighbor,
// so each owns both its edges outright; the vertical neighbor on each
// side has no lateral neighbor of its own to align against, so the
// oscillation constraint never fires and both polylines stay straight.
func TwoStackedSameDepth() cross3d.SubdivisionView {
	bottom := &cell{
		fromEdge: seg(0, 0, 0, 1000),
		toEdge:   seg(1000, 0, 1000, 1000),
		zMin:     0, zMax: 1000,
		depth: 0, expanding: true,
	}
	top := &cell{
		fromEdge: seg(0, 0, 0, 1000),
		toEdge:   seg(1000, 0, 1000, 1000),
		zMin:     1000, zMax: 2000,
		depth: 0, expanding: true,
	}
	bottom.adjacent[cross3d.Up] = []cross3d.CellIndex{1}
	top.adjacent[cross3d.Down] = []cross3d.CellIndex{0}
	return newView([]*cell{bottom, top})
}

// CoarseUnderTwoFine is seed scenario 3: one coarse cell under two
// equal-depth fine cells. The Discontinuity Resolver fires once on the
// coarse cell's UP direction, pulling the leftmost fine cell's RIGHT
// endpoint onto the 2D intersection between its own RIGHT side and the
// line joining the coarse cell's top two corners. The move here is
// deliberately small (squared distance 25, under the 100 bend-suppress
// threshold) so the endpoint is set directly with no inserted bend —
// one of the two outcomes spec.md §8 scenario 3 allows ("if geometry
// passes the 100-threshold").
func CoarseUnderTwoFine() cross3d.SubdivisionView {
	coarse := &cell{
		fromEdge: seg(0, 0, 0, 1000),
		toEdge:   seg(2000, 0, 2000, 1000),
		zMin:     0, zMax: 1000,
		depth: 0, expanding: true,
	}
	fineLeft := &cell{
		fromEdge: seg(0, 995, 0, 1995),
		toEdge:   seg(1000, 995, 1000, 1995),
		zMin:     1000, zMax: 2000,
		depth: 1, expanding: true,
	}
	fineRight := &cell{
		fromEdge: seg(1000, 995, 1000, 1995),
		toEdge:   seg(2000, 995, 2000, 1995),
		zMin:     1000, zMax: 2000,
		depth: 1, expanding: true,
	}
	coarse.adjacent[cross3d.Up] = []cross3d.CellIndex{1, 2}
	fineLeft.adjacent[cross3d.Down] = []cross3d.CellIndex{0}
	fineRight.adjacent[cross3d.Down] = []cross3d.CellIndex{0}
	fineLeft.adjacent[cross3d.Right] = []cross3d.CellIndex{2}
	fineRight.adjacent[cross3d.Left] = []cross3d.CellIndex{1}
	return newView([]*cell{coarse, fineLeft, fineRight})
}

// FineAboveCoarse is seed scenario 4: a fine cell directly above a
// coarse cell, neither with a lateral neighbor. The fine cell's own
// oscillation constraint (DOWN) has no lateral reference to pull
// against and never fires, so its edges stay straight.
func FineAboveCoarse() cross3d.SubdivisionView {
	coarse := &cell{
		fromEdge: seg(0, 0, 0, 1000),
		toEdge:   seg(2000, 0, 2000, 1000),
		zMin:     0, zMax: 1000,
		depth: 0, expanding: true,
	}
	fine := &cell{
		fromEdge: seg(200, 0, 200, 1000),
		toEdge:   seg(1800, 0, 1800, 1000),
		zMin:     1000, zMax: 2000,
		depth: 1, expanding: true,
	}
	coarse.adjacent[cross3d.Up] = []cross3d.CellIndex{1}
	fine.adjacent[cross3d.Down] = []cross3d.CellIndex{0}
	return newView([]*cell{coarse, fine})
}

// CoarseBeneathFine is seed scenario 5: a coarse cell beneath a fine
// cell, where the fine cell has a same-depth lateral sibling ("fineSide")
// that supplies the oscillation constraint's reference edge. The
// constraint fires on the coarse cell's LEFT/UP endpoint, pulling it to
// match the fine sibling's bottom corner. The move is again deliberately
// small (squared distance 50) so no bend is inserted — spec.md §8
// scenario 5 only says a bend "may" be.
func CoarseBeneathFine() cross3d.SubdivisionView {
	coarse := &cell{
		fromEdge: seg(0, 0, 0, 1000),
		toEdge:   seg(2000, 0, 2000, 1000),
		zMin:     0, zMax: 1000,
		depth: 0, expanding: true,
	}
	fine := &cell{
		fromEdge: seg(-800, 0, -800, 1000), // not owned by fine; placeholder
		toEdge:   seg(2500, 0, 2500, 1000),
		zMin:     1000, zMax: 2000,
		depth: 1, expanding: true,
	}
	fineSide := &cell{
		fromEdge: seg(-1200, 0, -1200, 1000), // not used; no left neighbor either
		toEdge:   seg(5, 995, 5, 1995),
		zMin:     1000, zMax: 2000,
		depth: 1, expanding: true,
	}
	coarse.adjacent[cross3d.Up] = []cross3d.CellIndex{1}
	fine.adjacent[cross3d.Down] = []cross3d.CellIndex{0}
	fine.adjacent[cross3d.Left] = []cross3d.CellIndex{2}
	fineSide.adjacent[cross3d.Right] = []cross3d.CellIndex{1}
	return newView([]*cell{coarse, fine, fineSide})
}
