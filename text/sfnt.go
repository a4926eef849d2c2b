package text

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/extrude"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTSource reads glyph outlines from TrueType and OpenType data with
// golang.org/x/image/font/sfnt.
//
// Outlines are loaded at one pixel per font unit, so coordinates come out
// in font units. SFNTSource is safe for concurrent use.
type SFNTSource struct {
	font *opentype.Font
	ppem fixed.Int26_6
	m    Metrics

	// mu guards buf, which sfnt reuses between calls.
	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewSFNTSource parses TTF or OTF data.
func NewSFNTSource(data []byte) (*SFNTSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &SFNTSource{
		font: f,
		ppem: fixed.Int26_6(int(f.UnitsPerEm()) << 6),
	}
	s.m = Metrics{UnitsPerEm: float64(f.UnitsPerEm())}

	if name, err := f.Name(&s.buf, sfnt.NameIDFamily); err == nil {
		s.m.Family = name
	}
	if b, err := f.Bounds(&s.buf, s.ppem, font.HintingNone); err == nil {
		s.m.LineHeight = fixedToFloat64(b.Max.Y - b.Min.Y)
	}
	if post := f.PostTable(); post != nil {
		s.m.LineHeight += float64(post.UnderlineThickness)
	}
	return s, nil
}

// Glyph implements GlyphSource.
func (s *SFNTSource) Glyph(r rune) (Glyph, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil || gid == 0 {
		return Glyph{}, false
	}
	segments, err := s.font.LoadGlyph(&s.buf, gid, s.ppem, nil)
	if err != nil {
		extrude.Logger().Debug("text: sfnt glyph not loaded",
			slog.String("rune", string(r)), slog.String("err", err.Error()))
		return Glyph{}, false
	}

	g := Glyph{Commands: make([]Command, 0, len(segments))}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			g.Commands = append(g.Commands, MoveCmd{To: flipFixed(seg.Args[0])})
		case sfnt.SegmentOpLineTo:
			g.Commands = append(g.Commands, LineCmd{To: flipFixed(seg.Args[0])})
		case sfnt.SegmentOpQuadTo:
			g.Commands = append(g.Commands, QuadCmd{
				Ctrl: flipFixed(seg.Args[0]),
				To:   flipFixed(seg.Args[1]),
			})
		case sfnt.SegmentOpCubeTo:
			g.Commands = append(g.Commands, CubicCmd{
				Ctrl1: flipFixed(seg.Args[0]),
				Ctrl2: flipFixed(seg.Args[1]),
				To:    flipFixed(seg.Args[2]),
			})
		}
	}

	if adv, err := s.font.GlyphAdvance(&s.buf, gid, s.ppem, font.HintingNone); err == nil {
		g.Advance = fixedToFloat64(adv)
	}
	return g, true
}

// Metrics implements GlyphSource.
func (s *SFNTSource) Metrics() Metrics {
	return s.m
}

// flipFixed converts an sfnt point, y down, to a y-up point.
func flipFixed(p fixed.Point26_6) extrude.Point2 {
	return extrude.Pt(fixedToFloat64(p.X), -fixedToFloat64(p.Y))
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
