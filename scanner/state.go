package scanner

import (
	"encoding/binary"

	rpmspec "github.com/shaba/tree-sitter-rpmspec"
)

// Error codes used by the state codec:
const (
	// ErrBadState indicates that Restore was given a buffer that does not
	// decode to a valid context stack.
	ErrBadState = rpmspec.StateErrors + iota
)

// maxEntrySize bounds the encoded size of one context stack entry:
// kind tag byte, two delimiter codepoints, depth counter.
const maxEntrySize = 1 + 2*binary.MaxVarintLen32 + binary.MaxVarintLen64

// Serialize encodes the context stack to a flat byte buffer, bottom entry
// first. The empty stack encodes to an empty buffer. The result is the
// entire session state: Restore on an identical buffer reconstructs an
// identical stack.
func (s *Scanner) Serialize() []byte {
	ctxs := s.stack.Items()
	if len(ctxs) == 0 {
		return nil
	}

	buf := make([]byte, 0, len(ctxs)*maxEntrySize)
	var tmp [binary.MaxVarintLen64]byte
	for _, c := range ctxs {
		buf = append(buf, byte(c.Kind))
		buf = append(buf, tmp[:binary.PutUvarint(tmp[:], uint64(c.Open))]...)
		buf = append(buf, tmp[:binary.PutUvarint(tmp[:], uint64(c.Close))]...)
		buf = append(buf, tmp[:binary.PutUvarint(tmp[:], uint64(c.Depth))]...)
	}
	return buf
}

// Restore replaces the context stack with the one encoded in buf.
// A zero-length buffer resets the session to the empty stack. A buffer that
// does not decode to a valid stack (unknown kind tag, delimiters that do not
// match the kind, zero depth, truncated or trailing bytes) also resets the
// session to the empty stack, but reports the defect: silently resuming with
// a guessed nesting state would mis-tokenize the rest of the file.
func (s *Scanner) Restore(buf []byte) error {
	s.stack.Clear()
	if len(buf) == 0 {
		return nil
	}

	pos := 0
	readUvarint := func() (uint64, bool) {
		v, n := binary.Uvarint(buf[pos:])
		if n <= 0 {
			return 0, false
		}
		pos += n
		return v, true
	}

	for pos < len(buf) {
		entry := pos
		kind := ContextKind(buf[pos])
		pos++
		open, okOpen := readUvarint()
		close, okClose := readUvarint()
		depth, okDepth := readUvarint()
		if !okOpen || !okClose || !okDepth {
			return s.restoreError(entry)
		}

		wantOpen, wantClose := kind.Delimiters()
		valid := kind <= ShellMacro &&
			rune(open) == wantOpen && rune(close) == wantClose &&
			depth >= 1 && depth <= 1<<31-1
		if !valid {
			return s.restoreError(entry)
		}

		s.stack.Push(MacroContext{Kind: kind, Open: rune(open), Close: rune(close), Depth: int(depth)})
	}

	return nil
}

func (s *Scanner) restoreError(pos int) error {
	s.stack.Clear()
	return rpmspec.FormatError(ErrBadState, "malformed scanner state at byte %d", pos)
}
