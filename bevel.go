package extrude

import "math"

// BevelVector returns the translation that moves pt onto the contour
// obtained by shifting both adjacent edges one unit to their left. Walking
// a contour clockwise, the shifted contour lies outside the original.
//
// The result is not normalized, so sharp corners keep their shape, but its
// squared length is capped at 2 to avoid spikes. Collinear edges continuing
// in the same direction yield the unit left normal; a reversing spike
// yields the direction of the incoming edge scaled to length sqrt(2).
// Zero-length edges yield the zero vector.
func BevelVector(pt, prev, next Point2) Point2 {
	vPrev := pt.Sub(prev)
	vNext := next.Sub(pt)
	prevLenSq := vPrev.LengthSquared()

	var trans Point2
	var shrink float64

	if cross := vPrev.Cross(vNext); math.Abs(cross) > epsilon {
		prevLen := math.Sqrt(prevLenSq)
		nextLen := vNext.Length()

		// Neighbors shifted one unit to the left of their edge.
		prevShift := Pt(prev.X-vPrev.Y/prevLen, prev.Y+vPrev.X/prevLen)
		nextShift := Pt(next.X-vNext.Y/nextLen, next.Y+vNext.X/nextLen)

		// Intersection of the two shifted lines as a multiple of vPrev.
		sf := nextShift.Sub(prevShift).Cross(vNext) / cross
		trans = prevShift.Add(vPrev.Mul(sf)).Sub(pt)

		lenSq := trans.LengthSquared()
		if lenSq <= 2 {
			return trans
		}
		shrink = math.Sqrt(lenSq / 2)
	} else if sameDirection(vPrev, vNext) {
		trans = Pt(-vPrev.Y, vPrev.X)
		shrink = math.Sqrt(prevLenSq)
	} else {
		trans = vPrev
		shrink = math.Sqrt(prevLenSq / 2)
	}

	if shrink == 0 {
		return Point2{}
	}
	return trans.Div(shrink)
}

// sameDirection reports whether two collinear vectors point the same way.
func sameDirection(a, b Point2) bool {
	switch {
	case a.X > epsilon:
		return b.X > epsilon
	case a.X < -epsilon:
		return b.X < -epsilon
	}
	return sign(a.Y) == sign(b.Y)
}
