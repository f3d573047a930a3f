//go:build !debug

package cross3d

// debugCheckInclinations is a no-op in release builds; only builds
// tagged "debug" pay for the post-construction inclination sweep.
func debugCheckInclinations(n *EdgeNetwork) {}
