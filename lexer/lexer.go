// Package lexer defines a host-side driver that streams a whole source into
// tokens: macro tokens from the scanner, comment lines, and text runs for
// everything the scanner leaves to default tokenization.
package lexer

import (
	"fmt"

	rpmspec "github.com/shaba/tree-sitter-rpmspec"
	"github.com/shaba/tree-sitter-rpmspec/scanner"
	"github.com/shaba/tree-sitter-rpmspec/source"
	"github.com/shaba/tree-sitter-rpmspec/token"
)

// Error codes used by lexer:
const (
	// ErrUnterminatedMacro indicates that the source ended while macro
	// contexts were still open.
	ErrUnterminatedMacro = rpmspec.LexicalErrors + iota
)

// Lexer combines the macro scanner with fallback tokenization of a single
// source. Spans the scanner declines or consumes without a token are
// collected into Text tokens; "#" at the start of a line outside macro
// bodies begins a Comment token. The stream ends with an EOF token.
type Lexer struct {
	scn     *scanner.Scanner
	cur     *source.Cursor
	pending []*token.Token
	done    bool
}

// New creates a lexer over src with a fresh scanner session.
func New(src *source.Source) *Lexer {
	return Resume(src, 0, scanner.New())
}

// Resume creates a lexer over src starting at the given byte offset with an
// existing scanner session, typically one restored from serialized state.
// This is the incremental-reparse entry point: only the edited region is
// re-tokenized.
func Resume(src *source.Source, pos int, scn *scanner.Scanner) *Lexer {
	cur := source.NewCursor(src)
	cur.Seek(pos)
	return &Lexer{scn: scn, cur: cur}
}

// Scanner returns the underlying scanner session, e.g. to serialize its
// state before suspending.
func (l *Lexer) Scanner() *scanner.Scanner {
	return l.scn
}

// Next returns the next token in the stream. After the EOF token every
// further call returns EOF again. Returns nil and an error if the source
// ends inside an open macro construct.
func (l *Lexer) Next() (*token.Token, error) {
	if len(l.pending) > 0 {
		result := l.pending[0]
		l.pending = l.pending[1:]
		return result, nil
	}
	if l.done {
		return token.EofToken(l.cur.Source()), nil
	}

	textStart := l.cur.Pos()

	for {
		if l.cur.IsEof() {
			if l.scn.Depth() > 0 {
				return nil, l.unterminatedError()
			}

			l.done = true
			return l.flushText(textStart, token.EofToken(l.cur.Source())), nil
		}

		if l.cur.Lookahead() == '#' && l.scn.Depth() == 0 && l.atLineStart() {
			return l.flushText(textStart, l.scanComment()), nil
		}

		before := l.cur.Pos()
		tok := l.scn.Scan(l.cur, token.AllMacroKinds)
		if tok != nil {
			return l.flushText(textStart, tok), nil
		}

		if l.cur.Pos() == before {
			// Declined: this character is text.
			l.cur.Advance()
		}
		// Consumed without a token (escape, interior delimiter): also text.
	}
}

// Tokens drains the stream up to and including the EOF token.
func (l *Lexer) Tokens() ([]*token.Token, error) {
	result := make([]*token.Token, 0)
	for {
		tok, e := l.Next()
		if e != nil {
			return result, e
		}

		result = append(result, tok)
		if tok.Kind() == token.EOF {
			return result, nil
		}
	}
}

// flushText returns the pending text run before next, if any, queueing next;
// otherwise returns next itself.
func (l *Lexer) flushText(textStart int, next *token.Token) *token.Token {
	src := l.cur.Source()
	end := next.Pos()
	if textStart >= end {
		return next
	}

	l.pending = append(l.pending, next)
	return token.New(token.Text, src.Text(textStart, end), src, textStart, end)
}

func (l *Lexer) scanComment() *token.Token {
	src := l.cur.Source()
	start := l.cur.Pos()
	for !l.cur.IsEof() && l.cur.Lookahead() != '\n' {
		l.cur.Advance()
	}
	end := l.cur.Pos()
	return token.New(token.Comment, src.Text(start, end), src, start, end)
}

func (l *Lexer) atLineStart() bool {
	pos := l.cur.Pos()
	return pos == 0 || l.cur.Source().Content()[pos-1] == '\n'
}

func (l *Lexer) unterminatedError() error {
	src := l.cur.Source()
	ctxs := l.scn.Contexts()
	open, _ := ctxs[len(ctxs)-1].Kind.Delimiters()
	line, col := src.LineCol(src.Len())
	msg := fmt.Sprintf("unterminated macro (missing match for %q)", open)
	return rpmspec.NewError(ErrUnterminatedMacro, msg, src.Name(), line, col)
}
