package cross3d_test

import (
	"testing"

	"github.com/cross3d/prismedge/pkg/cross3d"
	"github.com/cross3d/prismedge/pkg/fixtures"
)

func assertNoFindings(t *testing.T, findings []cross3d.Finding) {
	t.Helper()
	for _, f := range findings {
		t.Errorf("%s violation on cell %d: %s", f.Property, f.Cell, f.Message)
	}
}

func TestUniformSingleCellOwnsBothEdges(t *testing.T) {
	view := fixtures.UniformSingleCell(0, 1000, true)
	n := cross3d.Construct(view, cross3d.DefaultParams())

	if _, ok := n.LeftEdge(0); !ok {
		t.Error("isolated cell should own its LEFT edge")
	}
	if _, ok := n.RightEdge(0); !ok {
		t.Error("isolated cell should own its RIGHT edge")
	}
	assertNoFindings(t, cross3d.CheckInvariants(view, n))
}

func TestTwoStackedSameDepthNoOscillation(t *testing.T) {
	view := fixtures.TwoStackedSameDepth()
	n := cross3d.Construct(view, cross3d.DefaultParams())

	for _, idx := range []cross3d.CellIndex{0, 1} {
		if _, ok := n.LeftEdge(idx); !ok {
			t.Errorf("cell %d should own its LEFT edge", idx)
		}
		if _, ok := n.RightEdge(idx); !ok {
			t.Errorf("cell %d should own its RIGHT edge", idx)
		}
	}
	assertNoFindings(t, cross3d.CheckInvariants(view, n))
}

func TestCoarseUnderTwoFineTieBreakAndDiscontinuity(t *testing.T) {
	view := fixtures.CoarseUnderTwoFine()
	n := cross3d.Construct(view, cross3d.DefaultParams())

	if _, ok := n.LeftEdge(1); !ok {
		t.Error("fineLeft should own its LEFT edge (no left neighbor)")
	}
	if _, ok := n.RightEdge(1); !ok {
		t.Error("fineLeft should own the shared RIGHT edge on a depth tie (left owner wins)")
	}
	if _, ok := n.LeftEdge(2); ok {
		t.Error("fineRight should not own the shared LEFT edge on a depth tie")
	}
	if _, ok := n.RightEdge(2); !ok {
		t.Error("fineRight should own its own RIGHT edge (no right neighbor)")
	}

	edge, ok := n.RightEdge(1)
	if !ok {
		t.Fatal("fineLeft RIGHT edge missing")
	}
	if got := edge[0].XY(); got != (cross3d.IntPoint2{X: 1000, Y: 1000}) {
		t.Errorf("resolved discontinuity endpoint = %v, want {1000 1000}", got)
	}
	if edge[0].Z != 1000 {
		t.Errorf("resolved endpoint Z = %d, want 1000", edge[0].Z)
	}

	assertNoFindings(t, cross3d.CheckInvariants(view, n))
}

func TestFineAboveCoarseNoLateralReference(t *testing.T) {
	view := fixtures.FineAboveCoarse()
	n := cross3d.Construct(view, cross3d.DefaultParams())
	assertNoFindings(t, cross3d.CheckInvariants(view, n))
}

func TestCoarseBeneathFineOscillationSuppressedBend(t *testing.T) {
	view := fixtures.CoarseBeneathFine()
	n := cross3d.Construct(view, cross3d.DefaultParams())
	assertNoFindings(t, cross3d.CheckInvariants(view, n))
}

func TestGridInvariantsHoldAcrossConfigurations(t *testing.T) {
	configs := []fixtures.GridParams{
		{Columns: 1, Layers: 1, Depth: 0, CellWidth: 1000, LayerHeight: 1000, Expanding: true},
		{Columns: 3, Layers: 4, Depth: 0, CellWidth: 1000, LayerHeight: 1000, Expanding: true},
		{Columns: 5, Layers: 2, Depth: 1, CellWidth: 800, LayerHeight: 1500, Expanding: false},
	}
	for _, cfg := range configs {
		view := fixtures.Grid(cfg)
		n := cross3d.Construct(view, cross3d.DefaultParams())
		assertNoFindings(t, cross3d.CheckInvariants(view, n))
	}
}

func TestConstructIsIdempotentOverSameView(t *testing.T) {
	view := fixtures.Grid(fixtures.GridParams{Columns: 2, Layers: 3, Depth: 0, CellWidth: 1000, LayerHeight: 1000, Expanding: true})
	a := cross3d.Construct(view, cross3d.DefaultParams())
	b := cross3d.Construct(view, cross3d.DefaultParams())

	for idx := cross3d.CellIndex(0); idx < 6; idx++ {
		la, okA := a.LeftEdge(idx)
		lb, okB := b.LeftEdge(idx)
		if okA != okB {
			t.Fatalf("cell %d LEFT ownership differs between builds", idx)
		}
		if okA && !equalPolyline(la, lb) {
			t.Errorf("cell %d LEFT edge differs between builds: %v vs %v", idx, la, lb)
		}
	}
}

func equalPolyline(a, b []cross3d.IntPoint3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
