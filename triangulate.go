package extrude

import (
	"fmt"
	"log/slog"

	"github.com/ByteArena/poly2tri-go"
	"github.com/rclancey/go-earcut"
)

// Triangulator triangulates a polygon with holes for the caps.
//
// coords holds dim components per vertex, of which only x and y are used.
// The outer boundary comes first; holeStarts lists the vertex index at
// which each hole begins. The result holds three vertex indices per
// triangle, counter-clockwise when seen from +z.
type Triangulator interface {
	Triangulate(coords []float64, holeStarts []int, dim int) []int
}

// TriangulatorFunc adapts a function to the Triangulator interface.
type TriangulatorFunc func(coords []float64, holeStarts []int, dim int) []int

// Triangulate calls f.
func (f TriangulatorFunc) Triangulate(coords []float64, holeStarts []int, dim int) []int {
	return f(coords, holeStarts, dim)
}

// EarcutTriangulator triangulates by ear clipping. It is the default.
//
// Holes without vertices are skipped. Inputs the clipper rejects produce
// no triangles and a warning in the log.
type EarcutTriangulator struct{}

// Triangulate implements Triangulator.
func (EarcutTriangulator) Triangulate(coords []float64, holeStarts []int, dim int) (tris []int) {
	if dim < 2 {
		dim = 2
	}
	n := len(coords) / dim
	coords = coords[:n*dim]

	starts := make([]int, 0, len(holeStarts))
	for h, start := range holeStarts {
		end := n
		if h+1 < len(holeStarts) {
			end = holeStarts[h+1]
		}
		if start < end && start < n {
			starts = append(starts, start)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("extrude: earcut triangulation failed",
				slog.Int("vertices", n), slog.Any("reason", r))
			tris = nil
		}
	}()

	tris, err := earcut.Earcut(coords, starts, dim)
	if err != nil {
		Logger().Warn("extrude: earcut triangulation failed",
			slog.Int("vertices", n), slog.Any("reason", err))
		return nil
	}
	for i := 0; i+2 < len(tris); i += 3 {
		if orient(coords, dim, tris[i], tris[i+1], tris[i+2]) < 0 {
			tris[i+1], tris[i+2] = tris[i+2], tris[i+1]
		}
	}
	return tris
}

// Poly2TriTriangulator computes a constrained Delaunay triangulation, which
// avoids the long slivers ear clipping can produce on glyph outlines.
//
// Input must not contain duplicate points or touching contours. Inputs the
// sweep cannot handle produce no triangles and a warning in the log.
type Poly2TriTriangulator struct{}

// Triangulate implements Triangulator.
func (Poly2TriTriangulator) Triangulate(coords []float64, holeStarts []int, dim int) (tris []int) {
	if dim < 2 {
		dim = 2
	}
	n := len(coords) / dim
	outerEnd := n
	if len(holeStarts) > 0 {
		outerEnd = holeStarts[0]
	}
	if outerEnd < 3 {
		return nil
	}

	index := make(map[*poly2tri.Point]int, n)
	contour := func(from, to int) []*poly2tri.Point {
		pts := make([]*poly2tri.Point, 0, to-from)
		for i := from; i < to; i++ {
			p := poly2tri.NewPoint(coords[i*dim], coords[i*dim+1])
			index[p] = i
			pts = append(pts, p)
		}
		return pts
	}

	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("extrude: poly2tri triangulation failed",
				slog.Int("vertices", n), slog.Any("reason", r))
			tris = nil
		}
	}()

	swctx := poly2tri.NewSweepContext(contour(0, outerEnd), false)
	for h, start := range holeStarts {
		end := n
		if h+1 < len(holeStarts) {
			end = holeStarts[h+1]
		}
		if end-start < 3 {
			continue
		}
		swctx.AddHole(contour(start, end))
	}
	swctx.Triangulate()

	triangles := swctx.GetTriangles()
	tris = make([]int, 0, 3*len(triangles))
	for _, tr := range triangles {
		var idx [3]int
		for k, p := range tr.Points {
			i, ok := index[p]
			if !ok {
				panic(fmt.Sprintf("extrude: poly2tri produced a vertex not in the input: (%g, %g)", p.X, p.Y))
			}
			idx[k] = i
		}
		a, b, c := idx[0], idx[1], idx[2]
		if orient(coords, dim, a, b, c) < 0 {
			b, c = c, b
		}
		tris = append(tris, a, b, c)
	}
	return tris
}

// orient returns twice the signed area of triangle a b c.
func orient(coords []float64, dim, a, b, c int) float64 {
	ax, ay := coords[a*dim], coords[a*dim+1]
	bx, by := coords[b*dim], coords[b*dim+1]
	cx, cy := coords[c*dim], coords[c*dim+1]
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}
