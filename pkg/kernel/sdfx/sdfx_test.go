package sdfx

import (
	"math"
	"testing"
)

func TestBoxBoundingBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	min, max := box.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{100, 50, 25}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestBoxDimensions(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"cube", 10, 10, 10},
		{"elongated", 200, 5, 5},
		{"prism footprint", 1000, 1000, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := New()
			min, max := k.Box(tt.x, tt.y, tt.z).BoundingBox()
			if got := max[0] - min[0]; math.Abs(got-tt.x) > 0.01 {
				t.Errorf("X extent = %f, want %f", got, tt.x)
			}
			if got := max[1] - min[1]; math.Abs(got-tt.y) > 0.01 {
				t.Errorf("Y extent = %f, want %f", got, tt.y)
			}
			if got := max[2] - min[2]; math.Abs(got-tt.z) > 0.01 {
				t.Errorf("Z extent = %f, want %f", got, tt.z)
			}
		})
	}
}
