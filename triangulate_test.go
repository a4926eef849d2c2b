package extrude

import (
	"math"
	"testing"

	"github.com/rclancey/go-earcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// flatCoords lays out contours as xy pairs and returns their hole starts.
func flatCoords(outer []Point2, holes ...[]Point2) ([]float64, []int) {
	var coords []float64
	var starts []int
	add := func(c []Point2) {
		for _, p := range c {
			coords = append(coords, p.X, p.Y)
		}
	}
	add(outer)
	n := len(outer)
	for _, h := range holes {
		starts = append(starts, n)
		add(h)
		n += len(h)
	}
	return coords, starts
}

func triAreas(coords []float64, tris []int) []float64 {
	out := make([]float64, 0, len(tris)/3)
	for i := 0; i+2 < len(tris); i += 3 {
		out = append(out, orient(coords, 2, tris[i], tris[i+1], tris[i+2])/2)
	}
	return out
}

func TestTriangulators(t *testing.T) {
	impls := []struct {
		name string
		tri  Triangulator
	}{
		{"earcut", EarcutTriangulator{}},
		{"poly2tri", Poly2TriTriangulator{}},
	}
	cases := []struct {
		name  string
		outer []Point2
		holes [][]Point2
		area  float64
	}{
		{"square", square(0, 0, 2, false), nil, 4},
		{"concave", []Point2{Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(1, 1), Pt(1, 2), Pt(0, 2)}, nil, 3},
		{"square with hole", square(0, 0, 10, false), [][]Point2{square(3, 3, 4, true)}, 84},
		{
			"two holes",
			[]Point2{Pt(0, 0), Pt(20, 0), Pt(20, 10), Pt(0, 10)},
			[][]Point2{square(2, 2, 6, true), square(12, 2, 6, true)},
			200 - 72,
		},
	}
	for _, impl := range impls {
		for _, tc := range cases {
			t.Run(impl.name+"/"+tc.name, func(t *testing.T) {
				coords, starts := flatCoords(tc.outer, tc.holes...)
				tris := impl.tri.Triangulate(coords, starts, 2)
				require.NotEmpty(t, tris)
				require.Zero(t, len(tris)%3)

				n := len(coords) / 2
				for _, idx := range tris {
					require.True(t, idx >= 0 && idx < n, "index %d out of range", idx)
				}
				areas := triAreas(coords, tris)
				for i, a := range areas {
					assert.Positive(t, a, "triangle %d not counter-clockwise", i)
				}
				assert.InDelta(t, tc.area, floats.Sum(areas), 1e-9)
			})
		}
	}
}

func TestTriangulatorsIgnoreZ(t *testing.T) {
	coords := []float64{0, 0, 7, 1, 0, 7, 1, 1, 7, 0, 1, 7}
	for _, tri := range []Triangulator{EarcutTriangulator{}, Poly2TriTriangulator{}} {
		tris := tri.Triangulate(coords, nil, 3)
		assert.Len(t, tris, 6, "%T", tri)
	}
}

func ring(n int, r, cx, cy float64, cw bool) []Point2 {
	out := make([]Point2, 0, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		if cw {
			a = -a
		}
		out = append(out, Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return out
}

func TestEarcutLargeInput(t *testing.T) {
	// Enough vertices for the clipper to switch to z-order hashing.
	coords, starts := flatCoords(ring(200, 10, 0, 0, false), ring(64, 4, 1, 0, true))
	tris := EarcutTriangulator{}.Triangulate(coords, starts, 2)
	require.NotEmpty(t, tris)
	assert.Less(t, earcut.Deviation(coords, starts, 2, tris), 1e-9)
	for i, a := range triAreas(coords, tris) {
		assert.GreaterOrEqual(t, a, 0.0, "triangle %d clockwise", i)
	}
}

func TestEarcutDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
	}{
		{"empty", nil},
		{"single point", []float64{1, 1}},
		{"two points", []float64{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, EarcutTriangulator{}.Triangulate(tt.coords, nil, 2))
		})
	}
}

func TestEarcutSkipsEmptyHoles(t *testing.T) {
	coords, starts := flatCoords(square(0, 0, 10, false), nil, square(3, 3, 4, true), nil)
	require.Equal(t, []int{4, 4, 8, 8}, starts)

	tris := EarcutTriangulator{}.Triangulate(coords, starts, 2)
	assert.InDelta(t, 84, floats.Sum(triAreas(coords, tris)), 1e-9)
}

func TestPoly2TriDegenerate(t *testing.T) {
	tri := Poly2TriTriangulator{}
	assert.Empty(t, tri.Triangulate(nil, nil, 2))
	assert.Empty(t, tri.Triangulate([]float64{0, 0, 1, 1}, nil, 2))

	// Holes with fewer than three points are skipped.
	coords, starts := flatCoords(square(0, 0, 1, false), []Point2{Pt(0.5, 0.5)})
	tris := tri.Triangulate(coords, starts, 2)
	assert.InDelta(t, 1, floats.Sum(triAreas(coords, tris)), 1e-9)
}

func TestExtrudeWithPoly2Tri(t *testing.T) {
	shapes := ResolveShapes([][]Point2{square(0, 0, 10, true), square(3, 3, 4, false)})
	want := Extrude(shapes)
	got := Extrude(shapes, WithTriangulator(Poly2TriTriangulator{}))

	assert.Equal(t, want.Caps.VertexCount(), got.Caps.VertexCount())
	assert.Equal(t, want.Walls, got.Walls)

	half := got.Caps.TriangleCount() / 2
	assert.InDelta(t, 84, floats.Sum(triangleAreas(&got.Caps, 0, half)), 1e-9)
}

func TestTriangulatorFunc(t *testing.T) {
	var gotDim int
	f := TriangulatorFunc(func(coords []float64, holes []int, dim int) []int {
		gotDim = dim
		return []int{0, 1, 2}
	})
	m := Extrude([]Shape{{Points: square(0, 0, 1, false)}}, WithTriangulator(f))
	assert.Equal(t, 3, gotDim)
	assert.Equal(t, 2, m.Caps.TriangleCount())
}
