package extrude

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendGeomPath replays a seehuhn.de/go/geom path into p. Quadratic and
// cubic segments are tessellated with the path tolerance.
func (p *Path) AppendGeomPath(gp path.Path) *Path {
	for cmd, pts := range gp {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			p.QuadraticCurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			p.BezierCurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.ClosePath()
		}
	}
	return p
}

// GeomPath returns the flattened subpaths of p as a closed polyline path.
func (p *Path) GeomPath() path.Path {
	subpaths := p.Subpaths()
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, sp := range subpaths {
			for i, pt := range sp {
				buf[0] = vec.Vec2{X: pt.X, Y: pt.Y}
				cmd := path.CmdLineTo
				if i == 0 {
					cmd = path.CmdMoveTo
				}
				if !yield(cmd, buf[:]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}
