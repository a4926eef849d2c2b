package extrude

import "math"

// Polygon adds a regular polygon with the first vertex on top as a new
// subpath. It is drawn clockwise, so on its own it forms a solid; call
// Reverse right after to make it a hole.
func (p *Path) Polygon(cx, cy, radius float64, sides int) *Path {
	if sides < 3 {
		return p
	}

	step := -2 * math.Pi / float64(sides)
	start := math.Pi / 2
	for i := range sides {
		a := start + float64(i)*step
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.ClosePath()
}

// Star adds a star with the given number of points as a new subpath,
// drawn clockwise like Polygon.
func (p *Path) Star(cx, cy, outerRadius, innerRadius float64, points int) *Path {
	if points < 3 {
		return p
	}

	step := -math.Pi / float64(points)
	start := math.Pi / 2
	for i := range 2 * points {
		a := start + float64(i)*step
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.ClosePath()
}

// Heart adds a heart outline as a new subpath, oriented for y-down
// screen space: the notch is at (x, y) and the tip at (x, y+7). The heart
// is 11 units wide and 9.5 units high. It is drawn clockwise.
func (p *Path) Heart(x, y float64) *Path {
	return p.
		MoveTo(x, y).
		BezierCurveTo(x, y, x-0.5, y-2.5, x-2.5, y-2.5).
		BezierCurveTo(x-5.5, y-2.5, x-5.5, y+1.0, x-5.5, y+1.0).
		BezierCurveTo(x-5.5, y+3.0, x-3.5, y+5.2, x, y+7.0).
		BezierCurveTo(x+3.5, y+5.2, x+5.5, y+3.0, x+5.5, y+1.0).
		BezierCurveTo(x+5.5, y+1.0, x+5.5, y-2.5, x+2.5, y-2.5).
		BezierCurveTo(x+1.0, y-2.5, x, y, x, y).
		ClosePath()
}
