package extrude

import "math"

// maxTessellationDepth bounds the cubic subdivision recursion. A segment
// reached below this depth is emitted as a straight chord.
const maxTessellationDepth = 10

// FlattenCubic approximates the cubic Bezier p0..p3 by a polyline.
// The returned points exclude p0. Smaller tolerances produce more points.
func FlattenCubic(p0, p1, p2, p3 Point2, tol float64) []Point2 {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	var out []Point2
	tessellateCubic(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, tol, 0, func(x, y float64) {
		out = append(out, Pt(x, y))
	})
	return out
}

// tessellateCubic appends the cubic path to the current subpath.
func (p *Path) tessellateCubic(x1, y1, x2, y2, x3, y3, x4, y4 float64, level int) {
	tessellateCubic(x1, y1, x2, y2, x3, y3, x4, y4, p.Tolerance(), level, p.record)
}

// tessellateCubic subdivides the curve at its midpoint until both inner
// control points lie close enough to the chord, emitting chord end points.
func tessellateCubic(x1, y1, x2, y2, x3, y3, x4, y4, tol float64, level int, emit func(x, y float64)) {
	if level > maxTessellationDepth {
		emit(x4, y4)
		return
	}

	x12 := (x1 + x2) * 0.5
	y12 := (y1 + y2) * 0.5
	x23 := (x2 + x3) * 0.5
	y23 := (y2 + y3) * 0.5
	x34 := (x3 + x4) * 0.5
	y34 := (y3 + y4) * 0.5
	x123 := (x12 + x23) * 0.5
	y123 := (y12 + y23) * 0.5

	dx := x4 - x1
	dy := y4 - y1
	d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
	d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

	if (d2+d3)*(d2+d3) < tol*(dx*dx+dy*dy) {
		emit(x4, y4)
		return
	}

	x234 := (x23 + x34) * 0.5
	y234 := (y23 + y34) * 0.5
	x1234 := (x123 + x234) * 0.5
	y1234 := (y123 + y234) * 0.5

	tessellateCubic(x1, y1, x12, y12, x123, y123, x1234, y1234, tol, level+1, emit)
	tessellateCubic(x1234, y1234, x234, y234, x34, y34, x4, y4, tol, level+1, emit)
}
