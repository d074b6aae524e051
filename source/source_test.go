package source

import (
	"strings"
	"testing"

	"github.com/rchilly/scn/codec"
	"github.com/stretchr/testify/assert"
)

func TestContiguousPeekAdvance(t *testing.T) {
	src := NewString("hi 日")

	cp, units, ok := src.PeekRune()
	assert.True(t, ok)
	assert.Equal(t, rune('h'), cp)
	assert.Equal(t, 1, units)
	src.Advance(units)

	cp, units, ok = src.PeekRune()
	assert.True(t, ok)
	assert.Equal(t, rune('i'), cp)
	src.Advance(units)

	cp, units, ok = src.PeekRune()
	assert.True(t, ok)
	assert.Equal(t, rune(' '), cp)
	src.Advance(units)

	cp, units, ok = src.PeekRune()
	assert.True(t, ok)
	assert.Equal(t, rune(0x65E5), cp)
	assert.Equal(t, 3, units)
	src.Advance(units)

	assert.True(t, src.AtEnd())
	_, _, ok = src.PeekRune()
	assert.False(t, ok)
}

func TestContiguousSuffixIsSubview(t *testing.T) {
	backing := []byte("42 rest")
	src := NewContiguous(backing)

	_, units, _ := src.PeekRune()
	src.Advance(units)
	src.Advance(1) // consume '2'

	suf := src.Suffix().(*contiguousSuffix[byte])
	assert.Equal(t, " rest", string(suf.data))
	// same backing array: mutating through the original slice is visible
	// in the suffix, proving it is a subview rather than a copy.
	backing[3] = 'R'
	assert.Equal(t, " Rest", string(suf.data))
}

func TestContiguousReadRawUnits(t *testing.T) {
	src := NewString("abcdef")
	s, err := src.ReadRawUnits(3)
	assert.NoError(t, err)
	assert.Equal(t, "abc", s)

	rest := src.Suffix().String()
	assert.Equal(t, "def", rest)

	_, err = src.ReadRawUnits(10)
	assert.Error(t, err)
}

func TestContiguousUTF16Surrogate(t *testing.T) {
	// U+1F600 GRINNING FACE as a surrogate pair.
	units := codec.TranscodeValid[rune, uint16]([]rune{0x1F600})
	src := NewUTF16(units)

	cp, n, ok := src.PeekRune()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, rune(0x1F600), cp)
}

func TestStreamPeekAdvance(t *testing.T) {
	s := NewStream(strings.NewReader("42 rest"))

	cp, n, ok := s.PeekRune()
	assert.True(t, ok)
	assert.Equal(t, rune('4'), cp)
	s.Advance(n)

	cp, n, ok = s.PeekRune()
	assert.True(t, ok)
	assert.Equal(t, rune('2'), cp)
	s.Advance(n)

	rest := s.Suffix().String()
	assert.Equal(t, " rest", rest)
}

func TestStreamSuffixResumable(t *testing.T) {
	s := NewStream(strings.NewReader("head|tail"))

	for {
		cp, n, ok := s.PeekRune()
		if !ok || cp == '|' {
			break
		}
		s.Advance(n)
	}

	suf := s.Suffix().(*streamSuffix)
	// consume the '|' directly off the resumable reader
	b, err := suf.Reader().ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte('|'), b)

	rest, _ := suf.Reader().ReadString(0)
	assert.Equal(t, "tail", rest)
}

func TestStreamReadRawUnitsTooShort(t *testing.T) {
	s := NewStream(strings.NewReader("ab"))
	_, err := s.ReadRawUnits(5)
	assert.Error(t, err)
}
