package extrude

import (
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleBuffer(z float32) GeometryBuffer {
	return GeometryBuffer{
		Positions: []float32{0, 0, z, 1, 0, z, 0, 1, z},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}
}

func TestGeometryBufferCounts(t *testing.T) {
	g := triangleBuffer(0)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.TriangleCount())
	assert.False(t, g.IsEmpty())
	assert.Equal(t, Pt3(1, 0, 0), g.Position(1))
	assert.Equal(t, Pt3(0, 0, 1), g.Normal(2))

	var empty GeometryBuffer
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.Bounds().Empty())
	assert.Equal(t, [3]float32{}, empty.Bounds().Size())
}

func TestGeometryBufferAppend(t *testing.T) {
	g := triangleBuffer(0)
	g.Append(triangleBuffer(2))

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, g.Indices)
	assert.Len(t, g.Normals, 18)
}

func TestMeshClone(t *testing.T) {
	m := Mesh{Caps: triangleBuffer(0), Walls: triangleBuffer(1)}
	c := m.Clone()
	require.Equal(t, m, c)

	c.Caps.Positions[0] = 5
	c.Walls.Indices[2] = 0
	c.Walls.Normals[0] = -1
	assert.Equal(t, triangleBuffer(0), m.Caps)
	assert.Equal(t, triangleBuffer(1), m.Walls)

	var empty Mesh
	assert.Equal(t, empty, empty.Clone())
}

func TestGeometryBufferBounds(t *testing.T) {
	g := triangleBuffer(-1)
	g.Append(triangleBuffer(3))

	b := g.Bounds()
	assert.Equal(t, [3]float32{0, 0, -1}, b.Min)
	assert.Equal(t, [3]float32{1, 1, 3}, b.Max)
	assert.Equal(t, [3]float32{1, 1, 4}, b.Size())
}

func TestGeometryBufferIndices16(t *testing.T) {
	g := triangleBuffer(0)
	idx, ok := g.Indices16()
	require.True(t, ok)
	assert.Equal(t, []uint16{0, 1, 2}, idx)

	big := GeometryBuffer{Positions: make([]float32, 3*(math.MaxUint16+2))}
	_, ok = big.Indices16()
	assert.False(t, ok)
}

func TestMeshAggregates(t *testing.T) {
	m := Mesh{Caps: triangleBuffer(1), Walls: triangleBuffer(-1)}
	m.Walls.Append(triangleBuffer(0))

	assert.Equal(t, 9, m.VertexCount())
	assert.Equal(t, 3, m.TriangleCount())
	assert.False(t, m.IsEmpty())

	maxV, maxI := m.SubMeshLimits()
	assert.Equal(t, 6, maxV)
	assert.Equal(t, 6, maxI)

	b := m.Bounds()
	assert.Equal(t, float32(-1), b.Min[2])
	assert.Equal(t, float32(1), b.Max[2])

	var merged Mesh
	merged.Append(m)
	merged.Append(m)
	assert.Equal(t, 2*m.VertexCount(), merged.VertexCount())
	assert.Equal(t, uint32(3), merged.Caps.Indices[3])
}

func TestMeshLayout(t *testing.T) {
	m := Mesh{Caps: triangleBuffer(0), Walls: triangleBuffer(1)}
	l := m.Layout()

	require.Len(t, l.Buffers, 2)
	for i, b := range l.Buffers {
		assert.EqualValues(t, 12, b.ArrayStride)
		assert.Equal(t, gputypes.VertexStepModeVertex, b.StepMode)
		require.Len(t, b.Attributes, 1)
		assert.Equal(t, gputypes.VertexFormatFloat32x3, b.Attributes[0].Format)
		assert.EqualValues(t, i, b.Attributes[0].ShaderLocation)
	}
	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, l.Primitive.Topology)
	assert.Equal(t, gputypes.IndexFormatUint16, l.IndexFormat)
	assert.Equal(t, gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst, l.VertexUsage)
	assert.Equal(t, gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst, l.IndexUsage)
	assert.Equal(t, 2, l.SubMeshes)
	assert.Equal(t, 3, l.MaxVertices)
	assert.Equal(t, 3, l.MaxIndices)

	m.Walls.Positions = make([]float32, 3*(math.MaxUint16+2))
	assert.Equal(t, gputypes.IndexFormatUint32, m.Layout().IndexFormat)
}

func TestGeometryBufferBytes(t *testing.T) {
	g := triangleBuffer(0)
	assert.Len(t, g.PositionBytes(), 36)
	assert.Len(t, g.NormalBytes(), 36)
	assert.Equal(t, []byte{0, 0, 1, 0, 2, 0}, g.IndexBytes(gputypes.IndexFormatUint16))
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0}, g.IndexBytes(gputypes.IndexFormatUint32))

	// 1.0 as little-endian float32.
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, g.PositionBytes()[12:16])
}
