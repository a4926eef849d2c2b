// Package text turns strings into extruded 3D meshes.
//
// Glyph outlines come from a GlyphSource:
//
//   - Typeface: typeface.json documents with per character outline streams
//   - SFNTSource: TrueType/OpenType data via golang.org/x/image/font/sfnt
//   - GoTextSource: TrueType/OpenType data via go-text/typesetting
//
// BuildShapes lays out a string and resolves every glyph into shapes with
// holes. Generator wraps it with settings and a cached mesh that is only
// rebuilt after a change.
//
// # Example usage
//
//	src, err := text.NewSFNTSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gen := text.NewGenerator(src)
//	gen.SetText("Hi")
//	gen.Update(text.Settings{Size: 2, Depth: 0.2, TessTol: 0.001})
//	mesh, err := gen.Mesh()
//
// TrueType outlines wind their solid contours clockwise with y up, which
// is what the shape resolver expects. CFF based fonts use the opposite
// winding; single contour glyphs resolve correctly either way.
package text
