package text

import (
	"github.com/gogpu/extrude"
)

// Settings controls text mesh generation.
type Settings struct {
	// Size is the height of the em square in output units.
	Size float64

	// Depth is the half-thickness of the straight walls.
	Depth float64

	BevelEnabled   bool
	BevelThickness float64
	BevelSize      float64

	// TessTol is the curve flatness tolerance.
	TessTol float64
}

// DefaultSettings returns the default generation settings.
func DefaultSettings() Settings {
	return Settings{
		Size:           1,
		Depth:          0.1,
		BevelEnabled:   false,
		BevelThickness: 0.1,
		BevelSize:      0.1,
		TessTol:        extrude.DefaultTolerance,
	}
}

// options converts the settings to extrusion options.
func (s Settings) options() []extrude.Option {
	opts := []extrude.Option{extrude.WithDepth(s.Depth)}
	if s.BevelEnabled {
		return append(opts, extrude.WithBevel(s.BevelThickness, s.BevelSize))
	}
	return append(opts, extrude.WithoutBevel())
}

// Generator turns a string into an extruded mesh and caches the result.
//
// Setters only record changes and mark the generator dirty; the mesh is
// rebuilt the next time Mesh is called. A Generator is not safe for
// concurrent use.
//
// Example:
//
//	gen := text.NewGenerator(src)
//	gen.SetText("Hello")
//	mesh, err := gen.Mesh()
type Generator struct {
	src      GlyphSource
	text     string
	settings Settings
	tri      extrude.Triangulator

	dirty   bool
	version uint64
	mesh    extrude.Mesh
}

// NewGenerator returns a generator with DefaultSettings and no text.
func NewGenerator(src GlyphSource) *Generator {
	return &Generator{
		src:      src,
		settings: DefaultSettings(),
		dirty:    true,
	}
}

// SetText replaces the text. It reports whether the text changed.
func (g *Generator) SetText(s string) bool {
	if s == g.text {
		return false
	}
	g.text = s
	g.touch()
	return true
}

// Text returns the current text.
func (g *Generator) Text() string {
	return g.text
}

// SetSource replaces the glyph source and marks the generator dirty.
func (g *Generator) SetSource(src GlyphSource) {
	g.src = src
	g.touch()
}

// SetTriangulator replaces the cap triangulator. Nil selects the default.
func (g *Generator) SetTriangulator(t extrude.Triangulator) {
	g.tri = t
	g.touch()
}

// Update replaces the settings. It reports whether any value changed.
func (g *Generator) Update(s Settings) bool {
	if s == g.settings {
		return false
	}
	g.settings = s
	g.touch()
	return true
}

// Settings returns the current settings.
func (g *Generator) Settings() Settings {
	return g.settings
}

// Dirty reports whether the cached mesh is out of date.
func (g *Generator) Dirty() bool {
	return g.dirty
}

// Version returns a counter incremented by every change.
func (g *Generator) Version() uint64 {
	return g.version
}

func (g *Generator) touch() {
	g.dirty = true
	g.version++
}

// Mesh returns the mesh of the current text, rebuilding it only when the
// generator is dirty. The caller owns the returned buffers; the cached mesh
// is never handed out. On error the generator stays dirty and the previous
// mesh is kept.
func (g *Generator) Mesh() (extrude.Mesh, error) {
	if !g.dirty {
		return g.mesh.Clone(), nil
	}
	m, err := g.Generate(g.text)
	if err != nil {
		return extrude.Mesh{}, err
	}
	g.mesh = m
	g.dirty = false
	return m.Clone(), nil
}

// Generate builds the mesh of s with the current settings. It neither
// reads nor updates the cache.
func (g *Generator) Generate(s string) (extrude.Mesh, error) {
	shapes, err := BuildShapes(g.src, s, g.settings.Size, g.settings.TessTol)
	if err != nil {
		return extrude.Mesh{}, err
	}
	opts := g.settings.options()
	if g.tri != nil {
		opts = append(opts, extrude.WithTriangulator(g.tri))
	}
	return extrude.Extrude(shapes, opts...), nil
}
