package extrude

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

type geomCmd struct {
	cmd path.Command
	pts []vec.Vec2
}

func geomPathOf(cmds ...geomCmd) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, c := range cmds {
			if !yield(c.cmd, c.pts) {
				return
			}
		}
	}
}

func TestAppendGeomPath(t *testing.T) {
	gp := geomPathOf(
		geomCmd{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		geomCmd{path.CmdLineTo, []vec.Vec2{{X: 4, Y: 0}}},
		geomCmd{path.CmdQuadTo, []vec.Vec2{{X: 4, Y: 4}, {X: 0, Y: 4}}},
		geomCmd{path.CmdClose, nil},
		geomCmd{path.CmdMoveTo, []vec.Vec2{{X: 10, Y: 0}}},
		geomCmd{path.CmdCubeTo, []vec.Vec2{{X: 11, Y: 1}, {X: 12, Y: 1}, {X: 13, Y: 0}}},
		geomCmd{path.CmdClose, nil},
	)

	want := NewPath().
		MoveTo(0, 0).LineTo(4, 0).QuadraticCurveTo(4, 4, 0, 4).ClosePath().
		MoveTo(10, 0).BezierCurveTo(11, 1, 12, 1, 13, 0).ClosePath()
	got := NewPath().AppendGeomPath(gp)

	if diff := cmp.Diff(want.Subpaths(), got.Subpaths()); diff != "" {
		t.Errorf("subpaths (-want +got):\n%s", diff)
	}
}

func TestGeomPathRoundTrip(t *testing.T) {
	p := NewPath().Rect(0, 0, 2, 1)
	p.Circle(5, 5, 1)

	var cmds []path.Command
	for cmd, pts := range p.GeomPath() {
		cmds = append(cmds, cmd)
		if cmd != path.CmdClose && len(pts) != 1 {
			t.Fatalf("%v carries %d points, want 1", cmd, len(pts))
		}
	}
	if cmds[0] != path.CmdMoveTo || cmds[len(cmds)-1] != path.CmdClose {
		t.Errorf("commands = %v", cmds)
	}

	back := NewPath().AppendGeomPath(p.GeomPath())
	if diff := cmp.Diff(p.Subpaths(), back.Subpaths()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestGeomPathStopsEarly(t *testing.T) {
	p := NewPath().Rect(0, 0, 1, 1)
	n := 0
	for range p.GeomPath() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times, want 2", n)
	}
}
