package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rpmspec "github.com/shaba/tree-sitter-rpmspec"
	"github.com/shaba/tree-sitter-rpmspec/token"
)

// scanInto builds a scanner state by scanning the given prefix.
func scanInto(t *testing.T, src string) *Scanner {
	s := New()
	cur := cursor(src)
	drive(s, cur, token.AllMacroKinds)
	require.True(t, cur.IsEof())
	return s
}

func TestSerializeEmpty(t *testing.T) {
	s := New()
	assert.Len(t, s.Serialize(), 0)

	require.NoError(t, s.Restore(nil))
	assert.Equal(t, 0, s.Depth())
	require.NoError(t, s.Restore([]byte{}))
	assert.Equal(t, 0, s.Depth())
}

func TestRoundTrip(t *testing.T) {
	// Prefixes covering every context kind, same-kind nesting depth, and
	// stacks of mixed kinds.
	samples := []string{
		"",
		"%{",
		"%[",
		"%(",
		"%{{{",
		"%[[[[",
		"%(((",
		"%{%(",
		"%(%{",
		"%[%{%(",
		"%{a %[b",
		"%{{%[[%(((",
	}
	for _, src := range samples {
		s := scanInto(t, src)
		restored := New()
		require.NoError(t, restored.Restore(s.Serialize()), "source %q", src)
		assert.Equal(t, s.Contexts(), restored.Contexts(), "source %q", src)

		// Serializing the restored state must reproduce the buffer.
		assert.Equal(t, s.Serialize(), restored.Serialize(), "source %q", src)
	}
}

func TestRestoreReplacesState(t *testing.T) {
	saved := scanInto(t, "%[%{").Serialize()

	s := scanInto(t, "%(((")
	require.NoError(t, s.Restore(saved))
	require.Equal(t, 2, s.Depth())
	assert.Equal(t, ExprMacro, s.Contexts()[0].Kind)
	assert.Equal(t, BraceMacro, s.Contexts()[1].Kind)
}

func TestRestoreMalformed(t *testing.T) {
	valid := scanInto(t, "%{%(").Serialize()
	require.NotEmpty(t, valid)

	samples := []struct {
		name string
		buf  []byte
	}{
		{"unknown kind tag", []byte{0xff, '{', '}', 1}},
		{"wrong delimiter pair", []byte{byte(BraceMacro), '[', '}', 1}},
		{"zero depth", []byte{byte(BraceMacro), '{', '}', 0}},
		{"truncated entry", valid[:len(valid)-1]},
		{"trailing garbage", append(append([]byte{}, valid...), byte(ShellMacro))},
		{"lone tag byte", []byte{byte(BraceMacro)}},
	}
	for _, sample := range samples {
		s := scanInto(t, "%{")
		e := s.Restore(sample.buf)
		require.Error(t, e, sample.name)

		ee, ok := e.(*rpmspec.Error)
		require.True(t, ok, sample.name)
		assert.Equal(t, ErrBadState, ee.Code, sample.name)

		// Malformed input resets to the empty stack, never to a guess.
		assert.Equal(t, 0, s.Depth(), sample.name)
		assert.Len(t, s.Serialize(), 0, sample.name)
	}
}

func TestResumedScanContinues(t *testing.T) {
	first := scanInto(t, "%{start of body ")
	saved := first.Serialize()

	s := New()
	require.NoError(t, s.Restore(saved))

	cur := cursor("rest of body}")
	tokens := drive(s, cur, token.AllMacroKinds)
	require.Equal(t, []token.Kind{token.MacroEnd}, kinds(tokens))
	assert.Equal(t, 0, s.Depth())
}
