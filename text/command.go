package text

import (
	"strconv"
	"strings"

	"github.com/gogpu/extrude"
)

// Command is one drawing command of a glyph outline, in font units with y
// pointing up. The concrete types are MoveCmd, LineCmd, QuadCmd and
// CubicCmd.
type Command interface {
	isCommand()
}

// MoveCmd starts a new contour at To.
type MoveCmd struct {
	To extrude.Point2
}

// LineCmd draws a line to To.
type LineCmd struct {
	To extrude.Point2
}

// QuadCmd draws a quadratic Bézier curve through Ctrl to To.
type QuadCmd struct {
	Ctrl, To extrude.Point2
}

// CubicCmd draws a cubic Bézier curve through Ctrl1 and Ctrl2 to To.
type CubicCmd struct {
	Ctrl1, Ctrl2, To extrude.Point2
}

func (MoveCmd) isCommand()  {}
func (LineCmd) isCommand()  {}
func (QuadCmd) isCommand()  {}
func (CubicCmd) isCommand() {}

// ParseOutline decodes a typeface.json outline stream: space separated
// opcodes m, l, q and b, each followed by its coordinates. Quadratic and
// cubic commands list the end point first, then the control points.
//
// An empty stream yields no commands.
func ParseOutline(o string) ([]Command, error) {
	tokens := strings.Fields(o)
	var cmds []Command

	for i := 0; i < len(tokens); {
		op := tokens[i]
		var n int
		switch op {
		case "m", "l":
			n = 1
		case "q":
			n = 2
		case "b":
			n = 3
		default:
			return nil, &OutlineError{Offset: i, Op: op, Err: ErrUnknownOp}
		}

		var pts [3]extrude.Point2
		for k := range n {
			base := i + 1 + 2*k
			if base+1 >= len(tokens) {
				return nil, &OutlineError{Offset: i, Op: op, Err: ErrTruncatedOutline}
			}
			x, err := strconv.ParseFloat(tokens[base], 64)
			if err != nil {
				return nil, &OutlineError{Offset: base, Op: op, Err: err}
			}
			y, err := strconv.ParseFloat(tokens[base+1], 64)
			if err != nil {
				return nil, &OutlineError{Offset: base + 1, Op: op, Err: err}
			}
			pts[k] = extrude.Pt(x, y)
		}

		switch op {
		case "m":
			cmds = append(cmds, MoveCmd{To: pts[0]})
		case "l":
			cmds = append(cmds, LineCmd{To: pts[0]})
		case "q":
			cmds = append(cmds, QuadCmd{Ctrl: pts[1], To: pts[0]})
		case "b":
			cmds = append(cmds, CubicCmd{Ctrl1: pts[1], Ctrl2: pts[2], To: pts[0]})
		}
		i += 1 + 2*n
	}
	return cmds, nil
}

// appendCommands replays cmds into p, scaling every coordinate by scale
// and then translating it by (dx, dy).
func appendCommands(p *extrude.Path, cmds []Command, scale, dx, dy float64) {
	tr := func(q extrude.Point2) (float64, float64) {
		return q.X*scale + dx, q.Y*scale + dy
	}
	for _, c := range cmds {
		switch c := c.(type) {
		case MoveCmd:
			p.MoveTo(tr(c.To))
		case LineCmd:
			p.LineTo(tr(c.To))
		case QuadCmd:
			cx, cy := tr(c.Ctrl)
			x, y := tr(c.To)
			p.QuadraticCurveTo(cx, cy, x, y)
		case CubicCmd:
			c1x, c1y := tr(c.Ctrl1)
			c2x, c2y := tr(c.Ctrl2)
			x, y := tr(c.To)
			p.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
}
