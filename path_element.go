package extrude

// PathElement represents a single drawing command that can be replayed
// into a Path with Path.Append.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point2
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point2
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point2
	Point   Point2
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point2
	Control2 Point2
	Point    Point2
}

func (CubicTo) isPathElement() {}

// Close finishes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Append replays elements into the path.
func (p *Path) Append(elements ...PathElement) *Path {
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			p.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			p.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			p.QuadraticCurveTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			p.BezierCurveTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			p.ClosePath()
		}
	}
	return p
}
