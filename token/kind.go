// Package token defines token kinds, acceptable-kind sets, and tokens
// produced by the macro scanner and the host-side lexer.
package token

// Kind enumerates the token categories a host grammar can request from the
// scanner, plus the host-side kinds emitted by the lexer driver.
type Kind int

const (
	// None is the "no kind" sentinel.
	None Kind = iota

	// MacroStart opens a brace macro, e.g. the "%{" of "%{name}".
	MacroStart

	// MacroExprStart opens a bracket expression macro, e.g. the "%[" of "%[1+2]".
	MacroExprStart

	// MacroShellStart opens a paren shell macro, e.g. the "%(" of "%(id -u)".
	MacroShellStart

	// MacroEnd closes the innermost open macro construct.
	MacroEnd

	// MacroExpansion is a bare macro reference with no enclosing delimiter, e.g. "%_libdir".
	MacroExpansion

	// Text is ordinary spec text not claimed by the scanner.
	Text

	// Comment is a "#"-to-end-of-line run outside macro bodies.
	Comment

	// EOF marks the end of the source.
	EOF
)

var kindNames = map[Kind]string{
	None:            "-none-",
	MacroStart:      "macro-start",
	MacroExprStart:  "macro-expr-start",
	MacroShellStart: "macro-shell-start",
	MacroEnd:        "macro-end",
	MacroExpansion:  "macro-expansion",
	Text:            "text",
	Comment:         "comment",
	EOF:             "-end-of-file-",
}

func (k Kind) String() string {
	name, has := kindNames[k]
	if !has {
		return "-unknown-"
	}
	return name
}

// KindSet represents a set of acceptable token kinds, each one coded as 1 << kind.
type KindSet uint

// NewSet builds a KindSet from the given kinds.
func NewSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Has reports whether the set contains the given kind.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// With returns a copy of the set extended with the given kinds.
func (s KindSet) With(kinds ...Kind) KindSet {
	return s | NewSet(kinds...)
}

// Without returns a copy of the set with the given kinds removed.
func (s KindSet) Without(kinds ...Kind) KindSet {
	return s &^ NewSet(kinds...)
}

// AllMacroKinds is the full set of kinds the scanner can produce.
var AllMacroKinds = NewSet(MacroStart, MacroExprStart, MacroShellStart, MacroEnd, MacroExpansion)
