package source

import (
	"github.com/rchilly/scn/codec"
	"github.com/rchilly/scn/errs"
)

// Contiguous wraps a contiguous slice of U-width code units (byte, uint16,
// or rune) as a Source. Its Suffix is always a subview of the very same
// backing array, satisfying spec §8 property 3's "same underlying buffer"
// requirement.
type Contiguous[U codec.Unit] struct {
	data []U
	pos  int
}

var _ Source = (*Contiguous[byte])(nil)
var _ Source = (*Contiguous[uint16])(nil)
var _ Source = (*Contiguous[rune])(nil)

// NewContiguous wraps data as a Source over its code-unit width.
func NewContiguous[U codec.Unit](data []U) *Contiguous[U] {
	return &Contiguous[U]{data: data}
}

// NewString wraps a UTF-8 Go string as a byte-width Source.
func NewString(s string) *Contiguous[byte] {
	return NewContiguous([]byte(s))
}

// NewUTF16 wraps a UTF-16 code unit slice as a Source.
func NewUTF16(units []uint16) *Contiguous[uint16] {
	return NewContiguous(units)
}

// NewUTF32 wraps a UTF-32 (rune) slice as a Source.
func NewUTF32(units []rune) *Contiguous[rune] {
	return NewContiguous(units)
}

func (c *Contiguous[U]) PeekRune() (rune, int, bool) {
	if c.pos >= len(c.data) {
		return 0, 0, false
	}
	consumed, cp := codec.Next(c.data[c.pos:])
	return cp, consumed, true
}

func (c *Contiguous[U]) Advance(units int) {
	c.pos += units
	if c.pos > len(c.data) {
		c.pos = len(c.data)
	}
}

func (c *Contiguous[U]) AtEnd() bool {
	return c.pos >= len(c.data)
}

func (c *Contiguous[U]) Encoding() codec.Encoding {
	return codec.EncodingOf[U]()
}

func (c *Contiguous[U]) ReadRawUnits(n int) (string, error) {
	if c.pos+n > len(c.data) {
		return "", errs.New(errs.LengthTooShort, "need %d more source units, only %d remain", n, len(c.data)-c.pos)
	}

	window := c.data[c.pos : c.pos+n]
	if !codec.Validate(window) {
		return "", errs.At(errs.InvalidSourceEncoding, c.pos, "fixed-width read of %d units cuts a code point in half", n)
	}

	c.Advance(n)
	return string(codec.TranscodeValid[U, byte](window)), nil
}

func (c *Contiguous[U]) Suffix() Suffix {
	return &contiguousSuffix[U]{data: c.data[c.pos:]}
}

// Pos exposes the current unit offset into the wrapped slice.
func (c *Contiguous[U]) Pos() int { return c.pos }

type contiguousSuffix[U codec.Unit] struct {
	data []U
}

func (s *contiguousSuffix[U]) IsEmpty() bool { return len(s.data) == 0 }

func (s *contiguousSuffix[U]) String() string {
	return string(codec.TranscodeInvalid[U, byte](s.data))
}

// Units exposes the raw remaining slice of the suffix's native width,
// letting a caller that knows the encoding continue working with it
// directly (e.g. to feed another Source) instead of through String().
func (s *contiguousSuffix[U]) Units() []U { return s.data }
