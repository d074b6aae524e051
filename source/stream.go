package source

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/rchilly/scn/codec"
	"github.com/rchilly/scn/errs"
)

// DefaultBufferSize is the default lookahead window size for a Stream,
// generous enough to hold many pending UTF-8 code points; spec §4.2 only
// requires enough room for the widest single code point (4 bytes), but a
// larger buffer avoids re-filling on every Advance.
const DefaultBufferSize = 4096

// Stream adapts an io.Reader into a Source. Streaming sources are always
// byte/UTF-8 per spec §6 ("any erased forward byte sequence"); the
// lookahead window spec §4.2 calls for is *bufio.Reader's own buffer —
// see SPEC_FULL.md §4 for why bufio is used here instead of a hand-rolled
// lookahead buffer.
type Stream struct {
	r *bufio.Reader
}

var _ Source = (*Stream)(nil)

// NewStream wraps r with the default lookahead buffer size.
func NewStream(r io.Reader) *Stream {
	return NewStreamSize(r, DefaultBufferSize)
}

// NewStreamSize wraps r with an explicit lookahead buffer size.
func NewStreamSize(r io.Reader, size int) *Stream {
	return &Stream{r: bufio.NewReaderSize(r, size)}
}

// Reader exposes the underlying *bufio.Reader, letting a caller continue
// reading the stream after a scan call using the same buffered position —
// the mechanism behind ScanAndSync's suffix contract.
func (s *Stream) Reader() *bufio.Reader { return s.r }

func (s *Stream) PeekRune() (rune, int, bool) {
	r, size, err := s.r.ReadRune()
	if err != nil {
		return 0, 0, false
	}
	_ = s.r.UnreadRune()

	if r == utf8.RuneError && size == 1 {
		return codec.InvalidCodePoint, 1, true
	}
	return r, size, true
}

func (s *Stream) Advance(units int) {
	_, _ = s.r.Discard(units)
}

func (s *Stream) AtEnd() bool {
	_, err := s.r.Peek(1)
	return err != nil
}

func (s *Stream) Encoding() codec.Encoding { return codec.UTF8 }

func (s *Stream) ReadRawUnits(n int) (string, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(s.r, buf)
	if err != nil {
		// Whatever we did manage to read has been consumed from the
		// stream and is gone; report how short we fell.
		return "", errs.New(errs.LengthTooShort, "need %d more bytes, only %d available", n, read)
	}

	if !codec.Validate(buf) {
		return "", errs.New(errs.InvalidSourceEncoding, "fixed-width read of %d bytes cuts a code point in half", n)
	}

	return string(buf), nil
}

func (s *Stream) Suffix() Suffix {
	return &streamSuffix{r: s.r}
}

type streamSuffix struct {
	r *bufio.Reader
}

func (s *streamSuffix) IsEmpty() bool {
	_, err := s.r.Peek(1)
	return err != nil
}

func (s *streamSuffix) String() string {
	rest, _ := io.ReadAll(s.r)
	return string(rest)
}

// Reader exposes the same *bufio.Reader the Stream itself reads from, now
// positioned past the consumed prefix, so the caller may resume reading.
func (s *streamSuffix) Reader() *bufio.Reader { return s.r }
