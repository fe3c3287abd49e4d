/*
Package rpmspec implements the macro-token recognizer for RPM spec files.

RPM spec files mix ordinary text with a macro sub-language (%name,
%{name ...}, %[expr], %(shell), and the escape %%) whose closing delimiter
depends on which opening delimiter was used and how many same-kind
delimiters occur inside the body. A context-free grammar cannot tokenize
this alone, so the recognizer cooperates with a host grammar: the grammar
says which token kinds are acceptable at the cursor, and the recognizer
either produces a token, declines, or consumes a span that carries no token
of its own.

Consists of subpackages:
  - source: defines source buffer and character cursor used by the scanner;
  - token: token kinds, acceptable-kind sets, and tokens;
  - scanner: the recognizer core with resumable nesting state;
  - lexer: host-side driver streaming a whole source into tokens.

Typical usage is:

1. Create a scanner session per source file.

2. On every token request, call Scan with the set of token kinds the host
grammar currently accepts. A nil result with no cursor movement means the
host's own tokenization governs this position.

3. Before suspending (e.g. between incremental edits), call Serialize and
keep the bytes; call Restore on resumption so re-scanning does not have to
re-derive nesting state from the start of the file.

The lexer subpackage wires these steps together for hosts that just want a
flat token stream.
*/
package rpmspec

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	StateErrors   = 1   // used by scanner state codec
	LexicalErrors = 101 // used by lexer
)

// Error is the error type used by rpmspec subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// token.Token implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
