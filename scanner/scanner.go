// Package scanner implements the macro-token recognizer cooperating with a
// host grammar. The host calls Scan once per token request, passing the set
// of token kinds it currently accepts; the scanner answers with a token, or
// declines, or consumes a span that carries no token (escapes and interior
// delimiter bookkeeping, which the host renders as ordinary text).
package scanner

import (
	"unicode"

	"github.com/shaba/tree-sitter-rpmspec/internal/stack"
	"github.com/shaba/tree-sitter-rpmspec/source"
	"github.com/shaba/tree-sitter-rpmspec/token"
)

// Introducer is the character that begins every macro construct.
const Introducer = '%'

// Scanner is one scanning session. It owns the stack of open macro contexts,
// which is the entire resumable state: Serialize and Restore move it across
// suspensions so incremental re-scanning does not start from the top of the
// file. A Scanner is not safe for concurrent use; each session owns one
// instance exclusively.
type Scanner struct {
	stack *stack.Stack[MacroContext]
}

// New creates a fresh session with no open macro contexts.
func New() *Scanner {
	return &Scanner{stack: stack.New[MacroContext]()}
}

// Depth returns the number of currently-open macro contexts.
func (s *Scanner) Depth() int {
	return s.stack.Len()
}

// Contexts returns the open macro contexts from outermost to innermost.
// The returned slice must not be modified.
func (s *Scanner) Contexts() []MacroContext {
	return s.stack.Items()
}

// Scan inspects the source at the cursor and tries to produce a macro token
// whose kind is in accept. It returns nil in two distinguishable situations:
//
//   - declined: the cursor is back at its entry position and the context
//     stack is unchanged; the host's own tokenization governs this position;
//   - consumed without a token: the cursor moved past a "%%" escape or past
//     a delimiter that only adjusted nesting depth; the host must treat the
//     consumed span as ordinary text content.
//
// On success the cursor is left just past the committed token boundary.
// Scan never returns an error: unrecognized input always resolves to a
// decline.
func (s *Scanner) Scan(cur *source.Cursor, accept token.KindSet) *token.Token {
	start := cur.Pos()
	la := cur.Lookahead()

	if la != Introducer {
		if top := s.stack.Top(); top != nil {
			return s.scanDelimiter(cur, top, accept, start)
		}
		return nil
	}

	cur.Advance()
	next := cur.Lookahead()

	// Escape takes precedence whenever both lookahead characters are "%".
	if next == Introducer {
		cur.Advance()
		return nil
	}

	if top := s.stack.Top(); top != nil && !top.Kind.AllowsInterpolation() {
		// Shell bodies are opaque: only delimited nested constructs re-enter
		// the dispatcher, a bare reference stays shell text.
		switch next {
		case '{', '[', '(':
		default:
			cur.Seek(start)
			return nil
		}
	}

	switch next {
	case '{':
		return s.openContext(cur, BraceMacro, accept, start)
	case '[':
		return s.openContext(cur, ExprMacro, accept, start)
	case '(':
		return s.openContext(cur, ShellMacro, accept, start)
	default:
		if isNameRune(next) {
			return s.scanSimpleMacro(cur, accept, start)
		}

		cur.Seek(start)
		return nil
	}
}

// scanDelimiter handles lookahead inside an open context when it is not the
// macro introducer. Only the context's own delimiter pair is of interest;
// anything else is body text for the host to tokenize.
func (s *Scanner) scanDelimiter(cur *source.Cursor, top *MacroContext, accept token.KindSet, start int) *token.Token {
	switch cur.Lookahead() {
	case top.Open:
		// The opening character recurs inside the body; ordinary content,
		// but the close delimiter match count must follow it.
		top.Depth++
		cur.Advance()
		return nil
	case top.Close:
		if top.Depth > 1 {
			top.Depth--
			cur.Advance()
			return nil
		}

		if !accept.Has(token.MacroEnd) {
			return nil
		}

		s.stack.Pop()
		cur.Advance()
		cur.MarkEnd()
		return s.emit(token.MacroEnd, cur, start)
	default:
		return nil
	}
}

func (s *Scanner) openContext(cur *source.Cursor, kind ContextKind, accept token.KindSet, start int) *token.Token {
	startKind := kind.StartKind()
	if !accept.Has(startKind) {
		cur.Seek(start)
		return nil
	}

	cur.Advance()
	cur.MarkEnd()
	s.stack.Push(newContext(kind))
	return s.emit(startKind, cur, start)
}

// scanSimpleMacro recognizes a bare reference such as "%name", "%_name",
// "%#", or "%*". The committed boundary is the last position marked after an
// accepted rune, so the terminating character is never included; if nothing
// was accepted the scan declines instead of emitting a zero-length token.
func (s *Scanner) scanSimpleMacro(cur *source.Cursor, accept token.KindSet, start int) *token.Token {
	if !accept.Has(token.MacroExpansion) {
		cur.Seek(start)
		return nil
	}

	accepted := false
	for isNameRune(cur.Lookahead()) {
		cur.Advance()
		cur.MarkEnd()
		accepted = true
	}

	if !accepted {
		cur.Seek(start)
		return nil
	}

	cur.Seek(cur.Marked())
	return s.emit(token.MacroExpansion, cur, start)
}

func (s *Scanner) emit(kind token.Kind, cur *source.Cursor, start int) *token.Token {
	src := cur.Source()
	end := cur.Marked()
	return token.New(kind, src.Text(start, end), src, start, end)
}

// isNameRune reports whether r may appear in a simple macro name. The sigils
// and name characters mix freely, there is no ordering constraint.
func isNameRune(r rune) bool {
	switch r {
	case '*', '#', '_':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
