package text

// Glyph is the outline of one character in font units, y up.
type Glyph struct {
	Commands []Command
	// Advance is the horizontal distance to the next glyph.
	Advance float64
}

// Metrics describes a font as a whole, in font units.
type Metrics struct {
	// UnitsPerEm is the size of the em square. Glyphs are scaled by
	// size / UnitsPerEm.
	UnitsPerEm float64
	// LineHeight is the distance between consecutive baselines.
	LineHeight float64
	Family     string
}

// GlyphSource provides glyph outlines for text shaping.
//
// Implementations must be safe for concurrent use.
type GlyphSource interface {
	// Glyph returns the outline of r. It reports false when the font has
	// no glyph for r.
	Glyph(r rune) (Glyph, bool)
	Metrics() Metrics
}

// FallbackRune is looked up when a character has no glyph.
const FallbackRune = '?'
