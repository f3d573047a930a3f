package cross3d

// adjustEdgeEnd pulls polyline's V-ward endpoint to destination. It
// also inserts a candidate bending point next to the moved endpoint
// when that candidate lies farther than BendSuppressSq (squared
// distance) from both the adjacent point and the destination;
// otherwise only the endpoint moves. The "halve the move length" rule places
// the bend halfway down the adjacent segment's original direction,
// which empirically keeps resulting inclinations above the threshold.
func (n *EdgeNetwork) adjustEdgeEnd(polyline *[]IntPoint3, vertical Direction, destination IntPoint3) {
	p := *polyline
	lastIdx := len(p) - 1

	movedIdx := 0
	adjacentIdx := 1
	if vertical == Up {
		movedIdx = lastIdx
		adjacentIdx = lastIdx - 1
	}

	moved := p[movedIdx]
	if moved == destination {
		return
	}
	adjacent := p[adjacentIdx]

	moveLen2D := sub2(destination.XY(), moved.XY())
	m2 := vSize2(moveLen2D)

	dir := IntPoint3{X: adjacent.X - moved.X, Y: adjacent.Y - moved.Y, Z: adjacent.Z - moved.Z}
	dirLen2D := sub2(adjacent.XY(), moved.XY())
	n2 := dirLen2D.X*dirLen2D.X + dirLen2D.Y*dirLen2D.Y + dir.Z*dir.Z

	m := isqrt(m2)
	nn := isqrt(n2) // never zero: invariant POLY guarantees adjacent.Z != moved.Z

	bend := IntPoint3{
		X: moved.X + dir.X*m/2/nn,
		Y: moved.Y + dir.Y*m/2/nn,
		Z: moved.Z + dir.Z*m/2/nn,
	}

	bendToAdjacent := sub2(bend.XY(), adjacent.XY())
	bendToAdjacentSq := vSize2(bendToAdjacent) + (bend.Z-adjacent.Z)*(bend.Z-adjacent.Z)
	bendToDest := sub2(bend.XY(), destination.XY())
	bendToDestSq := vSize2(bendToDest) + (bend.Z-destination.Z)*(bend.Z-destination.Z)

	if bendToAdjacentSq > n.params.BendSuppressSq && bendToDestSq > n.params.BendSuppressSq {
		p[movedIdx] = destination
		inserted := make([]IntPoint3, 0, len(p)+1)
		if vertical == Up {
			inserted = append(inserted, p[:lastIdx]...)
			inserted = append(inserted, bend, p[lastIdx])
		} else {
			inserted = append(inserted, p[0], bend)
			inserted = append(inserted, p[1:]...)
		}
		*polyline = inserted
		return
	}

	p[movedIdx] = destination
}

// isqrt returns the integer square root of a nonnegative int64.
func isqrt(v int64) int64 {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}
