package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/extrude"
)

// writeOBJ writes m as a Wavefront OBJ document with one group per
// sub-mesh. Normals share the vertex numbering.
func writeOBJ(w io.Writer, m *extrude.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# extrude %s\n", extrude.Version)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())

	names := []string{"caps", "walls"}
	base := 1
	for i, g := range m.SubMeshes() {
		fmt.Fprintf(bw, "g %s\n", names[i])
		for v := range g.VertexCount() {
			p := g.Position(v)
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for v := range g.VertexCount() {
			n := g.Normal(v)
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for t := 0; t+2 < len(g.Indices); t += 3 {
			a := base + int(g.Indices[t])
			b := base + int(g.Indices[t+1])
			c := base + int(g.Indices[t+2])
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		base += g.VertexCount()
	}
	return bw.Flush()
}
