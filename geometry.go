package extrude

import (
	"math"
	"slices"

	"github.com/chewxy/math32"
)

// GeometryBuffer holds an indexed triangle list.
//
// Positions and Normals store three float32 components per vertex.
// Indices reference vertices of the same buffer, three per triangle.
type GeometryBuffer struct {
	Positions []float32
	Indices   []uint32
	Normals   []float32
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max [3]float32
}

// Empty reports whether the box contains no point.
func (b Box) Empty() bool {
	return b.Min[0] > b.Max[0]
}

// Size returns the extent of the box along each axis.
func (b Box) Size() [3]float32 {
	if b.Empty() {
		return [3]float32{}
	}
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// VertexCount returns the number of vertices.
func (g *GeometryBuffer) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (g *GeometryBuffer) TriangleCount() int {
	return len(g.Indices) / 3
}

// IsEmpty reports whether the buffer has no vertices.
func (g *GeometryBuffer) IsEmpty() bool {
	return len(g.Positions) == 0
}

// Position returns the position of vertex i.
func (g *GeometryBuffer) Position(i int) Point3 {
	return Point3{
		X: float64(g.Positions[3*i]),
		Y: float64(g.Positions[3*i+1]),
		Z: float64(g.Positions[3*i+2]),
	}
}

// Normal returns the normal of vertex i.
func (g *GeometryBuffer) Normal(i int) Point3 {
	return Point3{
		X: float64(g.Normals[3*i]),
		Y: float64(g.Normals[3*i+1]),
		Z: float64(g.Normals[3*i+2]),
	}
}

// Bounds returns the bounding box of all vertex positions. The box of an
// empty buffer is Empty.
func (g *GeometryBuffer) Bounds() Box {
	inf := math32.Inf(1)
	b := Box{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
	for i := 0; i+2 < len(g.Positions); i += 3 {
		for axis := range 3 {
			v := g.Positions[i+axis]
			b.Min[axis] = math32.Min(b.Min[axis], v)
			b.Max[axis] = math32.Max(b.Max[axis], v)
		}
	}
	return b
}

// Append adds the vertices and triangles of other, offsetting its indices
// past the vertices already present.
func (g *GeometryBuffer) Append(other GeometryBuffer) {
	offset := uint32(g.VertexCount())
	g.Positions = append(g.Positions, other.Positions...)
	g.Normals = append(g.Normals, other.Normals...)
	for _, idx := range other.Indices {
		g.Indices = append(g.Indices, idx+offset)
	}
}

// Clone returns a copy of g that shares no storage with it.
func (g *GeometryBuffer) Clone() GeometryBuffer {
	return GeometryBuffer{
		Positions: slices.Clone(g.Positions),
		Indices:   slices.Clone(g.Indices),
		Normals:   slices.Clone(g.Normals),
	}
}

// Indices16 returns the indices narrowed to uint16. It reports false when
// the buffer has more vertices than a 16-bit index can address.
func (g *GeometryBuffer) Indices16() ([]uint16, bool) {
	if g.VertexCount() > math.MaxUint16+1 {
		return nil, false
	}
	out := make([]uint16, len(g.Indices))
	for i, idx := range g.Indices {
		out[i] = uint16(idx)
	}
	return out, true
}

// addVertex appends a vertex and returns its index.
func (g *GeometryBuffer) addVertex(p, n Point3) uint32 {
	idx := uint32(g.VertexCount())
	g.Positions = append(g.Positions, float32(p.X), float32(p.Y), float32(p.Z))
	g.Normals = append(g.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	return idx
}

// Mesh is the result of an extrusion: front and back caps in one buffer,
// side walls including bevel rings in another.
type Mesh struct {
	Caps  GeometryBuffer
	Walls GeometryBuffer
}

// SubMeshes returns the caps and walls buffers in upload order.
func (m *Mesh) SubMeshes() []*GeometryBuffer {
	return []*GeometryBuffer{&m.Caps, &m.Walls}
}

// VertexCount returns the total number of vertices.
func (m *Mesh) VertexCount() int {
	return m.Caps.VertexCount() + m.Walls.VertexCount()
}

// TriangleCount returns the total number of triangles.
func (m *Mesh) TriangleCount() int {
	return m.Caps.TriangleCount() + m.Walls.TriangleCount()
}

// IsEmpty reports whether the mesh has no vertices.
func (m *Mesh) IsEmpty() bool {
	return m.Caps.IsEmpty() && m.Walls.IsEmpty()
}

// Bounds returns the bounding box of both sub-meshes.
func (m *Mesh) Bounds() Box {
	a, b := m.Caps.Bounds(), m.Walls.Bounds()
	for axis := range 3 {
		a.Min[axis] = math32.Min(a.Min[axis], b.Min[axis])
		a.Max[axis] = math32.Max(a.Max[axis], b.Max[axis])
	}
	return a
}

// Append merges other into m sub-mesh by sub-mesh.
func (m *Mesh) Append(other Mesh) {
	m.Caps.Append(other.Caps)
	m.Walls.Append(other.Walls)
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() Mesh {
	return Mesh{Caps: m.Caps.Clone(), Walls: m.Walls.Clone()}
}

// SubMeshLimits returns the largest vertex count and the largest index
// count over the sub-meshes, the sizes a dynamic GPU mesh must reserve.
func (m *Mesh) SubMeshLimits() (maxVertices, maxIndices int) {
	for _, g := range m.SubMeshes() {
		maxVertices = max(maxVertices, g.VertexCount())
		maxIndices = max(maxIndices, len(g.Indices))
	}
	return maxVertices, maxIndices
}
