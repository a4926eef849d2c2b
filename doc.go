// Package extrude turns vector paths into solid 3D meshes.
//
// # Overview
//
// extrude flattens drawing commands (lines, quadratic and cubic Bezier
// curves, arcs, ellipses, rounded rectangles, glyph outlines) into
// polygons, groups them into shapes with holes, and extrudes the shapes
// into closed meshes with optional bevelled edges. The result is a pair
// of indexed triangle lists ready for GPU upload.
//
// # Quick Start
//
//	import "github.com/gogpu/extrude"
//
//	p := extrude.NewPath()
//	p.Circle(0, 0, 2)           // clockwise: solid
//	p.Circle(0, 0, 1).Reverse() // counter-clockwise: hole
//
//	mesh := extrude.Extrude(p.ToShapes(),
//	    extrude.WithDepth(0.5),
//	    extrude.WithBevel(0.1, 0.1))
//
//	layout := mesh.Layout()
//
// # Pipeline
//
//   - Path: fluent builder that tessellates curves as they are added
//   - ResolveShapes: winding-based grouping of contours into outer
//     boundaries and holes
//   - Extrude: cap triangulation, side walls, bevel rings, flat normals
//   - Mesh.Layout: vertex and index formats for github.com/gogpu/gputypes
//
// Text is handled by the text sub-package, which converts glyph outlines
// from typeface JSON, TrueType or OpenType fonts into paths.
//
// # Coordinate System
//
// Shapes live in the xy plane with y pointing up. Counter-clockwise
// contours have a positive area. In path input, clockwise contours are
// solids and counter-clockwise ones are holes; resolved shapes are then
// normalized to a counter-clockwise outer boundary with clockwise holes.
// Meshes are centered on z = 0 with the front cap facing +z.
//
// # Concurrency
//
// All functions are synchronous. A Path must not be mutated concurrently,
// but independent extrusions may run in parallel.
package extrude

// Version is the library version written into exported files.
const Version = "0.1.0"
