package source

import (
	"unicode/utf8"
)

// EofRune is returned by Cursor.Lookahead when the cursor is past the end of the source.
const EofRune rune = -1

// Cursor is a forward character cursor over a single Source.
// It supports the two operations the scanner needs between token boundaries:
// advancing past the current rune and marking the current position as a
// candidate end of token. Seek allows the owner to roll the cursor back,
// e.g. when a speculative scan declines.
type Cursor struct {
	src  *Source
	pos  int
	mark int
}

func NewCursor(src *Source) *Cursor {
	return &Cursor{src: src}
}

func (c *Cursor) Source() *Source {
	return c.src
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Marked returns the byte offset recorded by the last MarkEnd call, 0 if none.
func (c *Cursor) Marked() int {
	return c.mark
}

// Lookahead returns the rune at the current position without consuming it,
// or EofRune past the end of the source.
func (c *Cursor) Lookahead() rune {
	if c.pos >= c.src.Len() {
		return EofRune
	}

	r, _ := utf8.DecodeRune(c.src.content[c.pos:])
	return r
}

// Advance consumes the current rune. Does nothing past the end of the source.
func (c *Cursor) Advance() {
	if c.pos >= c.src.Len() {
		return
	}

	_, size := utf8.DecodeRune(c.src.content[c.pos:])
	c.pos += size
}

// MarkEnd records the current position as a candidate token boundary.
func (c *Cursor) MarkEnd() {
	c.mark = c.pos
}

// Seek moves the cursor to the given byte offset, clamped to the source.
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	} else if pos > c.src.Len() {
		pos = c.src.Len()
	}
	c.pos = pos
}

// IsEof reports whether the cursor is past the last rune.
func (c *Cursor) IsEof() bool {
	return c.pos >= c.src.Len()
}
