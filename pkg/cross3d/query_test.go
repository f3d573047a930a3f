package cross3d

import "testing"

// buildSimpleNetwork wires a minimal two-cell network by hand (bypassing
// Construct) so GetCellEdgeLocation can be exercised against a known
// polyline without depending on pkg/fixtures.
func buildSimpleNetwork() (*EdgeNetwork, *stubCell, *stubCell) {
	before := &stubCell{depth: 0}
	after := &stubCell{depth: 0}

	n := newTestNetwork(DefaultParams())
	n.view = &stubView{cells: map[CellIndex]Cell{0: before, 1: after}}
	n.rightEdges[0] = []IntPoint3{
		{X: 1000, Y: 0, Z: 0},
		{X: 1000, Y: 1000, Z: 1000},
	}
	return n, before, after
}

type stubCell struct {
	depth int
}

func (s *stubCell) Triangle() (Segment2D, Segment2D) { return Segment2D{}, Segment2D{} }
func (s *stubCell) ZRange() (int64, int64)           { return 0, 1000 }
func (s *stubCell) Depth() int                       { return s.depth }
func (s *stubCell) IsExpanding() bool                { return true }
func (s *stubCell) Adjacent(d Direction) []CellIndex { return nil }

type stubView struct {
	cells map[CellIndex]Cell
}

func (v *stubView) DepthOrdered() [][]CellIndex { return nil }
func (v *stubView) Cell(idx CellIndex) Cell      { return v.cells[idx] }

func TestGetCellEdgeLocationAtEndpoints(t *testing.T) {
	n, _, _ := buildSimpleNetwork()

	got := n.GetCellEdgeLocation(0, 1, 0)
	if got != (IntPoint2{X: 1000, Y: 0}) {
		t.Errorf("z=0: got %v, want {1000 0}", got)
	}

	got = n.GetCellEdgeLocation(0, 1, 1000)
	if got != (IntPoint2{X: 1000, Y: 1000}) {
		t.Errorf("z=1000: got %v, want {1000 1000}", got)
	}
}

func TestGetCellEdgeLocationInterpolatesMidway(t *testing.T) {
	n, _, _ := buildSimpleNetwork()

	got := n.GetCellEdgeLocation(0, 1, 500)
	if got != (IntPoint2{X: 1000, Y: 500}) {
		t.Errorf("z=500: got %v, want {1000 500}", got)
	}
}

func TestGetCellEdgeLocationOutOfRangePanics(t *testing.T) {
	n, _, _ := buildSimpleNetwork()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range z")
		}
	}()
	n.GetCellEdgeLocation(0, 1, 5000)
}

func TestGetCellEdgeLocationFinerAfterUsesLeftEdge(t *testing.T) {
	before := &stubCell{depth: 0}
	after := &stubCell{depth: 1}

	n := newTestNetwork(DefaultParams())
	n.view = &stubView{cells: map[CellIndex]Cell{0: before, 1: after}}
	n.leftEdges[1] = []IntPoint3{
		{X: 2000, Y: 0, Z: 0},
		{X: 2000, Y: 2000, Z: 2000},
	}

	got := n.GetCellEdgeLocation(0, 1, 1000)
	if got != (IntPoint2{X: 2000, Y: 1000}) {
		t.Errorf("got %v, want {2000 1000}", got)
	}
}

func TestGetCellEdgeLocationMissingEdgePanics(t *testing.T) {
	before := &stubCell{depth: 0}
	after := &stubCell{depth: 0}
	n := newTestNetwork(DefaultParams())
	n.view = &stubView{cells: map[CellIndex]Cell{0: before, 1: after}}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing edge mapping")
		}
	}()
	n.GetCellEdgeLocation(0, 1, 0)
}
