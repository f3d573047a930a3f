// Package kernel defines the abstract solid-modeling interface used by
// pkg/fixtures to size synthetic subdivision geometry. An implementation
// (sdfx) provides the primitive behind this interface, so fixture
// construction never depends on a specific CAD backend.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract solid-modeling interface. Implementations
// (sdfx) provide the primitive behind it.
type Kernel interface {
	// Box creates a box solid with the given dimensions.
	Box(x, y, z float64) Solid
}
