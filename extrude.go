package extrude

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	normalFront = Pt3(0, 0, 1)
	normalBack  = Pt3(0, 0, -1)
)

// Extrude turns shapes into a closed solid centered on z = 0.
//
// Each shape gets a front cap at z = +(depth + bevel thickness), a back cap
// at the mirrored z, and side walls along the outer boundary and every
// hole. With the bevel enabled, three rings of walls replace the single
// one: cap to bevel contour, the straight section between ±depth, and
// bevel contour to the back cap.
//
// The input shapes are not modified. Results of all shapes are merged,
// caps into Mesh.Caps and walls into Mesh.Walls.
//
// Example:
//
//	shapes := extrude.NewPath().Rect(0, 0, 1, 1).ToShapes()
//	mesh := extrude.Extrude(shapes, extrude.WithDepth(0.5))
func Extrude(shapes []Shape, opts ...Option) Mesh {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return ExtrudeWith(shapes, o)
}

// ExtrudeWith is like Extrude but takes a complete Options value.
//
// It panics if the triangulator returns an index outside the vertex range
// of the shape it was given.
func ExtrudeWith(shapes []Shape, opts Options) Mesh {
	o := opts.effective()

	var m Mesh
	extruded := 0
	for _, s := range shapes {
		if len(s.Points) == 0 {
			continue
		}
		m.Append(extrudeShape(s, o))
		extruded++
	}

	Logger().Debug("extrude: mesh built",
		slog.Int("shapes", extruded),
		slog.Int("cap_vertices", m.Caps.VertexCount()),
		slog.Int("wall_vertices", m.Walls.VertexCount()),
		slog.Int("triangles", m.TriangleCount()),
		slog.Bool("bevel", o.BevelEnabled))
	return m
}

// extrudeShape builds the caps and walls of a single shape.
func extrudeShape(s Shape, o Options) Mesh {
	s = s.Clone().Normalize()

	// Outer boundary followed by the holes. contours holds the start index
	// of every contour plus the total vertex count.
	verts := make([]Point2, 0, s.PointCount())
	verts = append(verts, s.Points...)
	contours := []int{0}
	var holeStarts []int
	for _, h := range s.Holes {
		if len(h) == 0 {
			continue
		}
		holeStarts = append(holeStarts, len(verts))
		contours = append(contours, len(verts))
		verts = append(verts, h...)
	}
	vlen := len(verts)
	contours = append(contours, vlen)

	var m Mesh
	m.Caps = buildCaps(verts, holeStarts, o)

	e := wallBuilder{walls: &m.Walls}
	if !o.BevelEnabled {
		walkEdges(contours, func(a, b int) {
			e.quad(
				verts[a].Lift(o.Depth),
				verts[b].Lift(o.Depth),
				verts[b].Lift(-o.Depth),
				verts[a].Lift(-o.Depth),
			)
		})
		return m
	}

	bevel := bevelContour(verts, contours, o.BevelSize)
	zCap := o.Depth + o.BevelThickness
	walkEdges(contours, func(a, b int) {
		e.quad(
			verts[a].Lift(zCap),
			verts[b].Lift(zCap),
			bevel[b].Lift(o.Depth),
			bevel[a].Lift(o.Depth),
		)
	})
	walkEdges(contours, func(a, b int) {
		e.quad(
			bevel[a].Lift(o.Depth),
			bevel[b].Lift(o.Depth),
			bevel[b].Lift(-o.Depth),
			bevel[a].Lift(-o.Depth),
		)
	})
	walkEdges(contours, func(a, b int) {
		e.quad(
			verts[b].Lift(-zCap),
			verts[a].Lift(-zCap),
			bevel[a].Lift(-o.Depth),
			bevel[b].Lift(-o.Depth),
		)
	})
	return m
}

// buildCaps emits the front cap, triangulated once, and the back cap with
// the same triangles in reverse order.
func buildCaps(verts []Point2, holeStarts []int, o Options) GeometryBuffer {
	vlen := len(verts)
	zCap := o.Depth + o.BevelThickness

	var caps GeometryBuffer
	caps.Positions = make([]float32, 0, 6*vlen)
	caps.Normals = make([]float32, 0, 6*vlen)

	coords := make([]float64, 0, 3*vlen)
	for _, v := range verts {
		caps.addVertex(v.Lift(zCap), normalFront)
		coords = append(coords, v.X, v.Y, zCap)
	}
	front := o.Triangulator.Triangulate(coords, holeStarts, 3)
	for _, idx := range front {
		if idx < 0 || idx >= vlen {
			panic(fmt.Sprintf("extrude: triangulator returned index %d for %d vertices", idx, vlen))
		}
	}

	for _, v := range verts {
		caps.addVertex(v.Lift(-zCap), normalBack)
	}

	caps.Indices = make([]uint32, 0, 2*len(front))
	for _, idx := range front {
		caps.Indices = append(caps.Indices, uint32(idx))
	}
	for i := len(front) - 1; i >= 0; i-- {
		caps.Indices = append(caps.Indices, uint32(front[i]+vlen))
	}
	return caps
}

// walkEdges calls fn for every boundary edge (a, b) where b precedes a in
// its contour. Vertices are visited from last to first and b wraps within
// the contour of a.
func walkEdges(contours []int, fn func(a, b int)) {
	c := len(contours) - 2
	for a := contours[len(contours)-1] - 1; a >= 0; a-- {
		b := a - 1
		if b < contours[c] {
			b = contours[c+1] - 1
			c--
		}
		fn(a, b)
	}
}

// bevelContour offsets every vertex by size along its bevel vector.
func bevelContour(verts []Point2, contours []int, size float64) []Point2 {
	out := make([]Point2, len(verts))
	for c := 0; c+1 < len(contours); c++ {
		start, end := contours[c], contours[c+1]
		for i := start; i < end; i++ {
			prev := i - 1
			if prev < start {
				prev = end - 1
			}
			next := i + 1
			if next >= end {
				next = start
			}
			// Neighbors are swapped so the contour grows outward for a
			// counter-clockwise outer boundary and clockwise holes.
			out[i] = verts[i].Add(BevelVector(verts[i], verts[next], verts[prev]).Mul(size))
		}
	}
	return out
}

// wallBuilder appends flat-shaded quads to a wall buffer.
type wallBuilder struct {
	walls *GeometryBuffer
}

// quad emits p0..p3 as two triangles sharing the normal of p0 p1 p2.
func (w wallBuilder) quad(p0, p1, p2, p3 Point3) {
	n := faceNormal(p0, p1, p2)
	base := w.walls.addVertex(p0, n)
	w.walls.addVertex(p1, n)
	w.walls.addVertex(p2, n)
	w.walls.addVertex(p3, n)
	w.walls.Indices = append(w.walls.Indices, base, base+1, base+2, base+2, base+3, base)
}

// faceNormal returns the unit normal of (p1-p0) x (p2-p1), or the zero
// vector for a degenerate triangle.
func faceNormal(p0, p1, p2 Point3) Point3 {
	a := mgl64.Vec3{p1.X - p0.X, p1.Y - p0.Y, p1.Z - p0.Z}
	b := mgl64.Vec3{p2.X - p1.X, p2.Y - p1.Y, p2.Z - p1.Z}
	n := a.Cross(b)
	l := n.Len()
	if l == 0 {
		return Point3{}
	}
	n = n.Mul(1 / l)
	return Point3{X: n[0], Y: n[1], Z: n[2]}
}
