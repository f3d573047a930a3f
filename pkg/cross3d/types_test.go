package cross3d

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d    Direction
		want Direction
	}{
		{Left, Right},
		{Right, Left},
		{Up, Down},
		{Down, Up},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDirectionOppositeInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid direction")
		}
	}()
	Direction(99).Opposite()
}

func TestDirectionString(t *testing.T) {
	tests := map[Direction]string{Left: "left", Right: "right", Up: "up", Down: "down"}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", d, got, want)
		}
	}
}

func TestVSize2(t *testing.T) {
	if got := vSize2(IntPoint2{X: 3, Y: 4}); got != 25 {
		t.Errorf("vSize2(3,4) = %d, want 25", got)
	}
}

func TestSub2(t *testing.T) {
	got := sub2(IntPoint2{X: 10, Y: 20}, IntPoint2{X: 1, Y: 2})
	want := IntPoint2{X: 9, Y: 18}
	if got != want {
		t.Errorf("sub2() = %v, want %v", got, want)
	}
}

func TestIntPoint3XY(t *testing.T) {
	p := IntPoint3{X: 1, Y: 2, Z: 3}
	if got := p.XY(); got != (IntPoint2{X: 1, Y: 2}) {
		t.Errorf("XY() = %v, want {1 2}", got)
	}
}
