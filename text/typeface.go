package text

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

// Typeface is a font in the typeface.json format: per character outline
// streams (see ParseOutline) with advance widths.
//
// A Typeface is read-only after parsing and safe for concurrent use.
type Typeface struct {
	glyphs map[rune]Glyph
	m      Metrics
}

type typefaceJSON struct {
	FamilyName         string  `json:"familyName"`
	Resolution         float64 `json:"resolution"`
	UnderlineThickness float64 `json:"underlineThickness"`
	BoundingBox        struct {
		XMin float64 `json:"xMin"`
		XMax float64 `json:"xMax"`
		YMin float64 `json:"yMin"`
		YMax float64 `json:"yMax"`
	} `json:"boundingBox"`
	Glyphs map[string]struct {
		O  string  `json:"o"`
		HA float64 `json:"ha"`
	} `json:"glyphs"`
}

// LoadTypeface reads and parses a typeface.json document.
func LoadTypeface(r io.Reader) (*Typeface, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("text: read typeface: %w", err)
	}
	return ParseTypeface(data)
}

// ParseTypeface parses a typeface.json document. Every outline is decoded
// up front, so a malformed glyph is reported here rather than while
// shaping.
func ParseTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	var doc typefaceJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("text: parse typeface: %w", err)
	}
	if len(doc.Glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	tf := &Typeface{
		glyphs: make(map[rune]Glyph, len(doc.Glyphs)),
		m: Metrics{
			UnitsPerEm: doc.Resolution,
			LineHeight: doc.BoundingBox.YMax - doc.BoundingBox.YMin + doc.UnderlineThickness,
			Family:     doc.FamilyName,
		},
	}
	if tf.m.UnitsPerEm <= 0 {
		tf.m.UnitsPerEm = 1000
	}

	for key, g := range doc.Glyphs {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			continue
		}
		cmds, err := ParseOutline(g.O)
		if err != nil {
			return nil, fmt.Errorf("text: glyph %q: %w", r, err)
		}
		tf.glyphs[r] = Glyph{Commands: cmds, Advance: g.HA}
	}
	return tf, nil
}

// Glyph implements GlyphSource.
func (t *Typeface) Glyph(r rune) (Glyph, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}

// Metrics implements GlyphSource.
func (t *Typeface) Metrics() Metrics {
	return t.m
}

// Len returns the number of glyphs.
func (t *Typeface) Len() int {
	return len(t.glyphs)
}
