package extrude

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// Vertex attribute locations used by MeshLayout.
const (
	PositionLocation = 0
	NormalLocation   = 1
)

// vec3Stride is the size of one float32x3 attribute in bytes.
const vec3Stride = 12

// MeshLayout describes how to upload a Mesh to the GPU.
//
// Positions and normals live in separate vertex buffers, one per
// attribute. Each sub-mesh (caps, walls) is drawn as its own indexed
// triangle list.
type MeshLayout struct {
	// Buffers holds the position layout followed by the normal layout.
	Buffers []gputypes.VertexBufferLayout

	Primitive   gputypes.PrimitiveState
	IndexFormat gputypes.IndexFormat

	VertexUsage gputypes.BufferUsage
	IndexUsage  gputypes.BufferUsage

	SubMeshes   int
	MaxVertices int
	MaxIndices  int
}

// Layout returns the upload description of the mesh. Indices are 16-bit
// when every sub-mesh fits, 32-bit otherwise.
func (m *Mesh) Layout() MeshLayout {
	maxVerts, maxIdx := m.SubMeshLimits()

	format := gputypes.IndexFormatUint16
	if maxVerts > math.MaxUint16+1 {
		format = gputypes.IndexFormatUint32
	}

	return MeshLayout{
		Buffers: []gputypes.VertexBufferLayout{
			vec3Layout(PositionLocation),
			vec3Layout(NormalLocation),
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeBack,
		},
		IndexFormat: format,
		VertexUsage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		IndexUsage:  gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
		SubMeshes:   len(m.SubMeshes()),
		MaxVertices: maxVerts,
		MaxIndices:  maxIdx,
	}
}

func vec3Layout(location uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vec3Stride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: location},
		},
	}
}

// PositionBytes returns the positions as little-endian float32 data.
func (g *GeometryBuffer) PositionBytes() []byte {
	return float32Bytes(g.Positions)
}

// NormalBytes returns the normals as little-endian float32 data.
func (g *GeometryBuffer) NormalBytes() []byte {
	return float32Bytes(g.Normals)
}

// IndexBytes returns the indices encoded in the given format. Indices are
// truncated when a 16-bit format is requested for a buffer that needs 32.
func (g *GeometryBuffer) IndexBytes(format gputypes.IndexFormat) []byte {
	if format == gputypes.IndexFormatUint16 {
		out := make([]byte, 0, 2*len(g.Indices))
		for _, idx := range g.Indices {
			out = binary.LittleEndian.AppendUint16(out, uint16(idx))
		}
		return out
	}
	out := make([]byte, 0, 4*len(g.Indices))
	for _, idx := range g.Indices {
		out = binary.LittleEndian.AppendUint32(out, idx)
	}
	return out
}

func float32Bytes(v []float32) []byte {
	out := make([]byte, 0, 4*len(v))
	for _, f := range v {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	return out
}
