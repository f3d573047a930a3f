package cross3d

// GetCellEdgeLocation returns the 2D point where the shared LEFT/RIGHT
// edge between before (the left cell) and after (the right cell)
// crosses the horizontal plane at height z. Ownership mirrors
// invariant OWN: if after is strictly finer, it owns (and stores) the
// edge as its LEFT edge; otherwise before owns it as its RIGHT edge,
// which also resolves the equal-depth case to the left owner.
//
// z must lie within the owning polyline's [zMin, zMax] range;
// violating that precondition is a programming error (spec.md §7).
func (n *EdgeNetwork) GetCellEdgeLocation(before, after CellIndex, z int64) IntPoint2 {
	var polyline []IntPoint3
	var ok bool
	if n.view.Cell(after).Depth() > n.view.Cell(before).Depth() {
		polyline, ok = n.leftEdges[after]
	} else {
		polyline, ok = n.rightEdges[before]
	}
	if !ok {
		violate(ViolationMissingOwnership, before, "no stored edge between cells %d and %d", before, after)
	}
	if z < polyline[0].Z {
		violate(ViolationZOutOfRange, before, "z=%d outside edge range [%d, %d]", z, polyline[0].Z, polyline[len(polyline)-1].Z)
	}

	for i := 0; i < len(polyline)-1; i++ {
		below, above := polyline[i], polyline[i+1]
		if z > above.Z {
			continue
		}
		if above.Z == below.Z {
			violate(ViolationDegenerateSample, before, "consecutive polyline samples share z=%d", below.Z)
		}
		restZ := z - below.Z
		dx := above.X - below.X
		dy := above.Y - below.Y
		dz := above.Z - below.Z
		return IntPoint2{
			X: below.X + dx*restZ/dz,
			Y: below.Y + dy*restZ/dz,
		}
	}
	violate(ViolationZOutOfRange, before, "z=%d outside edge range [%d, %d]", z, polyline[0].Z, polyline[len(polyline)-1].Z)
	panic("unreachable")
}
