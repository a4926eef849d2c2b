package extrude

import (
	"math"
	"testing"
)

func TestBevelVector(t *testing.T) {
	tests := []struct {
		name           string
		pt, prev, next Point2
		want           Point2
	}{
		{"right angle", Pt(0, 0), Pt(-1, 0), Pt(0, 1), Pt(-1, 1)},
		{"straight horizontal", Pt(0, 0), Pt(-1, 0), Pt(1, 0), Pt(0, 1)},
		{"straight leftward", Pt(0, 0), Pt(1, 0), Pt(-1, 0), Pt(0, -1)},
		{"straight vertical", Pt(0, 0), Pt(0, -1), Pt(0, 1), Pt(-1, 0)},
		{"spike", Pt(0, 0), Pt(-1, 0), Pt(-1, 0), Pt(math.Sqrt2, 0)},
		{"degenerate", Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BevelVector(tt.pt, tt.prev, tt.next)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("BevelVector() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBevelVectorClampsSharpCorners(t *testing.T) {
	got := BevelVector(Pt(0, 0), Pt(-1, 0), Pt(-1, 0.05))
	if l := got.Length(); math.Abs(l-math.Sqrt2) > 1e-9 {
		t.Errorf("length = %v, want sqrt(2)", l)
	}
}

func TestBevelVectorUnitOffsetFromEdges(t *testing.T) {
	// Away from the clamp, the shifted point is one unit from both edges.
	pt, prev, next := Pt(0, 0), Pt(-2, -1), Pt(1, 2)
	v := BevelVector(pt, prev, next)
	if v.LengthSquared() > 2 {
		t.Skip("clamped")
	}
	q := pt.Add(v)
	for _, e := range [][2]Point2{{prev, pt}, {pt, next}} {
		d := e[1].Sub(e[0])
		dist := math.Abs(d.Cross(q.Sub(e[0]))) / d.Length()
		if math.Abs(dist-1) > 1e-12 {
			t.Errorf("distance to edge %v = %v, want 1", e, dist)
		}
	}
}
