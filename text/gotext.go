package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/extrude"
)

// GoTextSource reads glyph outlines with go-text/typesetting. Outlines
// are in font units, y up, like SFNTSource.
//
// GoTextSource is safe for concurrent use.
type GoTextSource struct {
	m Metrics

	// mu guards face; font.Face caches per-glyph state.
	mu   sync.Mutex
	face *font.Face
}

// NewGoTextSource parses TTF or OTF data.
func NewGoTextSource(data []byte) (*GoTextSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &GoTextSource{
		face: face,
		m: Metrics{
			UnitsPerEm: float64(face.Upem()),
			Family:     face.Describe().Family,
		},
	}
	if ext, ok := face.FontHExtents(); ok {
		s.m.LineHeight = float64(ext.Ascender - ext.Descender + ext.LineGap)
	}
	return s, nil
}

// Glyph implements GlyphSource.
func (s *GoTextSource) Glyph(r rune) (Glyph, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, ok := s.face.NominalGlyph(r)
	if !ok {
		return Glyph{}, false
	}
	outline, ok := s.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return Glyph{}, false
	}

	g := Glyph{
		Commands: make([]Command, 0, len(outline.Segments)),
		Advance:  float64(s.face.HorizontalAdvance(gid)),
	}
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			g.Commands = append(g.Commands, MoveCmd{To: segmentPoint(seg.Args[0])})
		case opentype.SegmentOpLineTo:
			g.Commands = append(g.Commands, LineCmd{To: segmentPoint(seg.Args[0])})
		case opentype.SegmentOpQuadTo:
			g.Commands = append(g.Commands, QuadCmd{
				Ctrl: segmentPoint(seg.Args[0]),
				To:   segmentPoint(seg.Args[1]),
			})
		case opentype.SegmentOpCubeTo:
			g.Commands = append(g.Commands, CubicCmd{
				Ctrl1: segmentPoint(seg.Args[0]),
				Ctrl2: segmentPoint(seg.Args[1]),
				To:    segmentPoint(seg.Args[2]),
			})
		}
	}
	return g, true
}

// Metrics implements GlyphSource.
func (s *GoTextSource) Metrics() Metrics {
	return s.m
}

func segmentPoint(p opentype.SegmentPoint) extrude.Point2 {
	return extrude.Pt(float64(p.X), float64(p.Y))
}
