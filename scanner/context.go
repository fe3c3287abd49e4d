package scanner

import (
	"github.com/shaba/tree-sitter-rpmspec/token"
)

// ContextKind tags the construct that opened a macro context.
type ContextKind byte

const (
	// BraceMacro is a "%{...}" construct.
	BraceMacro ContextKind = iota

	// ExprMacro is a "%[...]" expression construct.
	ExprMacro

	// ShellMacro is a "%(...)" shell construct.
	ShellMacro
)

// Delimiters returns the codepoint pair matched by this context kind.
func (k ContextKind) Delimiters() (open, close rune) {
	switch k {
	case ExprMacro:
		return '[', ']'
	case ShellMacro:
		return '(', ')'
	default:
		return '{', '}'
	}
}

// StartKind returns the token kind emitted when a context of this kind is opened.
func (k ContextKind) StartKind() token.Kind {
	switch k {
	case ExprMacro:
		return token.MacroExprStart
	case ShellMacro:
		return token.MacroShellStart
	default:
		return token.MacroStart
	}
}

// AllowsInterpolation reports whether nested macro expansions are recognized
// inside this context. Shell macro bodies are opaque shell source aside from
// delimiter matching and delimited nested macro starts.
func (k ContextKind) AllowsInterpolation() bool {
	return k != ShellMacro
}

// MacroContext represents one currently-open macro construct.
// Depth counts unmatched occurrences of Open seen since the context was
// pushed; it starts at 1 and the context is popped when a matching Close
// brings it to 0.
type MacroContext struct {
	Kind        ContextKind
	Open, Close rune
	Depth       int
}

func newContext(k ContextKind) MacroContext {
	open, close := k.Delimiters()
	return MacroContext{Kind: k, Open: open, Close: close, Depth: 1}
}
