package text

import (
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/extrude"
)

// BuildShapes lays out s with src and returns the resolved shapes of all
// glyphs.
//
// Glyphs are scaled by size / units per em. The first baseline is y = 0;
// each '\n' returns to x = 0 and moves one line height down. Every glyph
// is tessellated with tolerance tol into its own path, so shapes of
// neighbouring glyphs never merge.
//
// A character without a glyph is replaced by FallbackRune. When that is
// missing too, BuildShapes stops and returns a *MissingGlyphError.
func BuildShapes(src GlyphSource, s string, size, tol float64) ([]extrude.Shape, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	m := src.Metrics()
	scale := size
	if m.UnitsPerEm > 0 {
		scale /= m.UnitsPerEm
	}
	lineHeight := m.LineHeight * scale

	var shapes []extrude.Shape
	var x, y float64
	for _, r := range norm.NFC.String(s) {
		if r == '\n' {
			x = 0
			y -= lineHeight
			continue
		}

		g, err := lookupGlyph(src, r)
		if err != nil {
			return nil, err
		}
		if len(g.Commands) > 0 {
			p := extrude.NewPath().SetTolerance(tol)
			appendCommands(p, g.Commands, scale, x, y)
			shapes = append(shapes, p.ToShapes()...)
		}
		x += g.Advance * scale
	}
	return shapes, nil
}

func lookupGlyph(src GlyphSource, r rune) (Glyph, error) {
	if g, ok := src.Glyph(r); ok {
		return g, nil
	}
	family := src.Metrics().Family
	if g, ok := src.Glyph(FallbackRune); ok {
		extrude.Logger().Debug("text: glyph fallback",
			slog.String("rune", string(r)), slog.String("family", family))
		return g, nil
	}
	extrude.Logger().Warn("text: missing glyph",
		slog.String("rune", string(r)), slog.String("family", family))
	return Glyph{}, &MissingGlyphError{Rune: r, Family: family}
}
