package token

import (
	"github.com/shaba/tree-sitter-rpmspec/source"
)

type Token struct {
	kind     Kind
	text     string
	source   *source.Source
	pos, end int
}

func New(kind Kind, text string, src *source.Source, pos, end int) *Token {
	return &Token{kind, text, src, pos, end}
}

func (t *Token) Kind() Kind {
	return t.kind
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	} else {
		return t.source.Name()
	}
}

// Pos returns the byte offset of the first character of the token.
func (t *Token) Pos() int {
	return t.pos
}

// End returns the byte offset just past the last character of the token.
func (t *Token) End() int {
	return t.end
}

func (t *Token) Line() int {
	if t.source == nil {
		return 0
	}
	line, _ := t.source.LineCol(t.pos)
	return line
}

func (t *Token) Col() int {
	if t.source == nil {
		return 0
	}
	_, col := t.source.LineCol(t.pos)
	return col
}

func EofToken(s *source.Source) *Token {
	pos := 0
	if s != nil {
		pos = s.Len()
	}
	return &Token{kind: EOF, source: s, pos: pos, end: pos}
}
