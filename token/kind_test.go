package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindNames(t *testing.T) {
	samples := map[Kind]string{
		None:            "-none-",
		MacroStart:      "macro-start",
		MacroExprStart:  "macro-expr-start",
		MacroShellStart: "macro-shell-start",
		MacroEnd:        "macro-end",
		MacroExpansion:  "macro-expansion",
		Text:            "text",
		Comment:         "comment",
		EOF:             "-end-of-file-",
		Kind(99):        "-unknown-",
	}
	for kind, name := range samples {
		assert.Equal(t, name, kind.String())
	}
}

func TestKindSet(t *testing.T) {
	s := NewSet(MacroStart, MacroEnd)
	assert.True(t, s.Has(MacroStart))
	assert.True(t, s.Has(MacroEnd))
	assert.False(t, s.Has(MacroExpansion))
	assert.False(t, NewSet().Has(MacroStart))

	s = s.With(MacroExpansion)
	assert.True(t, s.Has(MacroExpansion))

	s = s.Without(MacroStart, MacroEnd)
	assert.False(t, s.Has(MacroStart))
	assert.False(t, s.Has(MacroEnd))
	assert.True(t, s.Has(MacroExpansion))

	for _, kind := range []Kind{MacroStart, MacroExprStart, MacroShellStart, MacroEnd, MacroExpansion} {
		assert.True(t, AllMacroKinds.Has(kind), "kind %s", kind)
	}
	assert.False(t, AllMacroKinds.Has(Text))
	assert.False(t, AllMacroKinds.Has(None))
}
