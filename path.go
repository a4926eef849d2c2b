package extrude

import "math"

// DefaultTolerance is the curve flatness tolerance used by new paths.
const DefaultTolerance = 0.0001

// kappa90 is the control point distance for a quarter circle of radius 1.
const kappa90 = 0.5522847493

// minRoundRectRadius is the corner radius below which RoundRect draws a
// plain rectangle.
const minRoundRectRadius = 0.1

// Path accumulates drawing commands into flattened subpaths.
//
// Curves are tessellated as they are added, so a Path only ever holds
// polylines. A subpath is finished when the next MoveTo starts, when
// ClosePath is called, or when ToShapes is requested. Finished subpaths are
// implicitly closed: a trailing point equal to the first one is dropped.
//
// Every mutating call bumps Version, letting callers decide when geometry
// built from the path needs regenerating.
//
// A Path is not safe for concurrent mutation.
type Path struct {
	subpaths [][]Point2
	points   PointArena

	cursor    Point2 // end point of the last command
	start     Point2 // first point of the current subpath
	hasCursor bool

	tessTol float64
	version uint64
}

// NewPath creates a new empty path using DefaultTolerance.
func NewPath() *Path {
	return &Path{tessTol: DefaultTolerance}
}

// SetTolerance sets the curve flatness tolerance for subsequent curves.
// Non-positive values restore DefaultTolerance.
func (p *Path) SetTolerance(tol float64) *Path {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	p.tessTol = tol
	p.version++
	return p
}

// Tolerance returns the curve flatness tolerance.
func (p *Path) Tolerance() float64 {
	if p.tessTol <= 0 {
		return DefaultTolerance
	}
	return p.tessTol
}

// Version returns a counter that changes on every mutation of the path.
func (p *Path) Version() uint64 {
	return p.version
}

// CurrentPoint returns the end point of the last drawing command.
func (p *Path) CurrentPoint() (Point2, bool) {
	return p.cursor, p.hasCursor
}

// MoveTo finishes the current subpath and starts a new one at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.finishSubpath()

	pt := Pt(x, y)
	p.points.Append(pt)
	p.cursor, p.start, p.hasCursor = pt, pt, true
	p.version++
	return p
}

// LineTo draws a straight line to (x, y). Without a current point it
// behaves like MoveTo.
func (p *Path) LineTo(x, y float64) *Path {
	if !p.hasCursor {
		return p.MoveTo(x, y)
	}
	p.ensureSubpath()

	pt := Pt(x, y)
	p.points.Append(pt)
	p.cursor = pt
	p.version++
	return p
}

// BezierCurveTo draws a cubic Bezier curve from the current point to
// (x, y) with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	if !p.hasCursor {
		p.MoveTo(c1x, c1y)
	}
	p.ensureSubpath()

	p0 := p.cursor
	if p0.X == c1x && p0.Y == c1y && c2x == x && c2y == y {
		return p.LineTo(x, y)
	}

	p.tessellateCubic(p0.X, p0.Y, c1x, c1y, c2x, c2y, x, y, 0)
	p.cursor = Pt(x, y)
	p.version++
	return p
}

// CubicTo is an alias for BezierCurveTo.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	return p.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
}

// QuadraticCurveTo draws a quadratic Bezier curve from the current point
// to (x, y) with control point (cx, cy). The curve is raised to a cubic.
func (p *Path) QuadraticCurveTo(cx, cy, x, y float64) *Path {
	if !p.hasCursor {
		p.MoveTo(cx, cy)
	}
	x0, y0 := p.cursor.X, p.cursor.Y
	return p.BezierCurveTo(
		x0+2.0/3.0*(cx-x0), y0+2.0/3.0*(cy-y0),
		x+2.0/3.0*(cx-x), y+2.0/3.0*(cy-y),
		x, y,
	)
}

// QuadTo is an alias for QuadraticCurveTo.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	return p.QuadraticCurveTo(cx, cy, x, y)
}

// Arc starts a new subpath with a circular arc of radius r around
// (cx, cy), from startAngle to endAngle (radians). The arc runs
// counter-clockwise when ccw is set, clockwise otherwise. Sweeps of a full
// turn or more draw a full circle.
func (p *Path) Arc(cx, cy, r, startAngle, endAngle float64, ccw bool) *Path {
	const twoPi = 2 * math.Pi

	da := endAngle - startAngle
	if ccw {
		if math.Abs(da) >= twoPi {
			da = twoPi
		} else {
			for da < 0 {
				da += twoPi
			}
		}
	} else if math.Abs(da) >= twoPi {
		da = -twoPi
	} else {
		for da > 0 {
			da -= twoPi
		}
	}

	// At most 90 degrees per cubic segment.
	ndivs := int(math.Max(1, math.Min(math.Abs(da)/(math.Pi*0.5)+0.5, 5)))
	hda := da / float64(ndivs) / 2.0
	var kappa float64
	if hda != 0 {
		kappa = math.Abs(4.0 / 3.0 * (1 - math.Cos(hda)) / math.Sin(hda))
	}
	if !ccw {
		kappa = -kappa
	}

	var px, py, ptanx, ptany float64
	for i := 0; i <= ndivs; i++ {
		a := startAngle + da*(float64(i)/float64(ndivs))
		dx, dy := math.Cos(a), math.Sin(a)
		x := cx + dx*r
		y := cy + dy*r
		tanx := -dy * r * kappa
		tany := dx * r * kappa

		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.BezierCurveTo(px+ptanx, py+ptany, x-tanx, y-tany, x, y)
		}
		px, py = x, y
		ptanx, ptany = tanx, tany
	}
	return p
}

// Ellipse adds a closed ellipse centered at (cx, cy) as a new subpath.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	p.MoveTo(cx-rx, cy)
	p.BezierCurveTo(cx-rx, cy+ry*kappa90, cx-rx*kappa90, cy+ry, cx, cy+ry)
	p.BezierCurveTo(cx+rx*kappa90, cy+ry, cx+rx, cy+ry*kappa90, cx+rx, cy)
	p.BezierCurveTo(cx+rx, cy-ry*kappa90, cx+rx*kappa90, cy-ry, cx, cy-ry)
	p.BezierCurveTo(cx-rx*kappa90, cy-ry, cx-rx, cy-ry*kappa90, cx-rx, cy)
	return p
}

// Circle adds a closed circle centered at (cx, cy) as a new subpath.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Rect adds an axis-aligned rectangle as a new subpath.
func (p *Path) Rect(x, y, w, h float64) *Path {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	return p
}

// RoundRect adds a rectangle with rounded corners as a new subpath.
// The radius is clamped to half the width and height; radii below 0.1
// produce a plain rectangle.
func (p *Path) RoundRect(x, y, w, h, r float64) *Path {
	if r < minRoundRectRadius {
		return p.Rect(x, y, w, h)
	}

	rx := math.Min(r, math.Abs(w)*0.5) * sign(w)
	ry := math.Min(r, math.Abs(h)*0.5) * sign(h)
	k := 1 - kappa90

	p.MoveTo(x, y+ry)
	p.LineTo(x, y+h-ry)
	p.BezierCurveTo(x, y+h-ry*k, x+rx*k, y+h, x+rx, y+h)
	p.LineTo(x+w-rx, y+h)
	p.BezierCurveTo(x+w-rx*k, y+h, x+w, y+h-ry*k, x+w, y+h-ry)
	p.LineTo(x+w, y+ry)
	p.BezierCurveTo(x+w, y+ry*k, x+w-rx*k, y, x+w-rx, y)
	p.LineTo(x+rx, y)
	p.BezierCurveTo(x+rx*k, y, x, y+ry*k, x, y+ry)
	return p
}

// ClosePath finishes the current subpath. The current point moves back to
// the subpath's first point, where the next drawing command starts.
func (p *Path) ClosePath() *Path {
	p.finishSubpath()
	if p.hasCursor {
		p.cursor = p.start
	}
	p.version++
	return p
}

// Reverse reverses the point order of the subpath in progress. Finished
// subpaths are not affected.
func (p *Path) Reverse() *Path {
	p.points.Reverse()
	if last, ok := p.points.Last(); ok {
		p.cursor = last
	}
	if first, ok := p.points.First(); ok {
		p.start = first
	}
	p.version++
	return p
}

// AddPoint records (x, y) in the current subpath unless it equals the last
// recorded point, and makes it the current point. Curves drawn next start
// there.
func (p *Path) AddPoint(x, y float64) {
	p.LineTo(x, y)
}

// Clear removes all subpaths and the current point. The tolerance is kept.
func (p *Path) Clear() *Path {
	p.subpaths = p.subpaths[:0]
	p.points.Reset()
	p.cursor, p.start, p.hasCursor = Point2{}, Point2{}, false
	p.version++
	return p
}

// IsEmpty reports whether the path has recorded no points.
func (p *Path) IsEmpty() bool {
	return len(p.subpaths) == 0 && p.points.Len() == 0
}

// Subpaths returns copies of the finished subpaths followed by the subpath
// in progress, each with the closing duplicate point removed.
func (p *Path) Subpaths() [][]Point2 {
	out := make([][]Point2, 0, len(p.subpaths)+1)
	for _, sp := range p.subpaths {
		out = append(out, append([]Point2(nil), sp...))
	}
	if pending := closedContour(p.points.Snapshot()); len(pending) > 1 {
		out = append(out, pending)
	}
	return out
}

// ToShapes finishes the subpath in progress and resolves all subpaths into
// shapes with holes. It returns nil when the path recorded no contour.
func (p *Path) ToShapes() []Shape {
	p.finishSubpath()
	if len(p.subpaths) == 0 {
		return nil
	}
	return ResolveShapes(p.subpaths)
}

// record appends a flattened curve point to the subpath in progress.
func (p *Path) record(x, y float64) {
	p.points.Append(Pt(x, y))
}

// ensureSubpath reopens a subpath at the current point after ClosePath.
func (p *Path) ensureSubpath() {
	if p.points.Len() == 0 && p.hasCursor {
		p.points.Append(p.cursor)
		p.start = p.cursor
	}
}

// finishSubpath stores the subpath in progress and resets the arena.
// Subpaths consisting of a lone point are discarded.
func (p *Path) finishSubpath() {
	if p.points.Len() == 0 {
		return
	}
	if contour := closedContour(p.points.Snapshot()); len(contour) > 1 {
		p.subpaths = append(p.subpaths, contour)
	}
	p.points.Reset()
}

// closedContour drops a trailing point equal to the first point.
func closedContour(pts []Point2) []Point2 {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		return pts[:n-1]
	}
	return pts
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
