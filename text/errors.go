package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoSource is returned when a Generator has no glyph source.
	ErrNoSource = errors.New("text: no glyph source")

	// ErrNoGlyphs is returned when a typeface defines no glyphs.
	ErrNoGlyphs = errors.New("text: typeface has no glyphs")

	// ErrUnknownOp is wrapped by OutlineError for an unknown opcode.
	ErrUnknownOp = errors.New("text: unknown outline opcode")

	// ErrTruncatedOutline is wrapped by OutlineError when the stream ends
	// inside a command.
	ErrTruncatedOutline = errors.New("text: truncated outline")
)

// MissingGlyphError is returned when a rune has no glyph and the source
// has no fallback glyph either.
type MissingGlyphError struct {
	Rune   rune
	Family string
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("text: character %q does not exist in font family %q", e.Rune, e.Family)
}

// OutlineError reports a malformed glyph outline stream.
type OutlineError struct {
	// Offset is the index of the offending token.
	Offset int
	// Op is the opcode being decoded.
	Op  string
	Err error
}

func (e *OutlineError) Error() string {
	return fmt.Sprintf("text: outline token %d (op %q): %v", e.Offset, e.Op, e.Err)
}

func (e *OutlineError) Unwrap() error {
	return e.Err
}
