package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.True(t, Validate([]byte("hello, 日本")))
	assert.False(t, Validate([]byte{0xFF, 'v', 'a', 'l', 'i', 'd'}))
	assert.True(t, Validate([]uint16{'a', 0xD83D, 0xDE00})) // 😀 surrogate pair
	assert.False(t, Validate([]uint16{0xDE00}))             // lone low surrogate
	assert.True(t, Validate([]rune{'a', 0x65E5}))
	assert.True(t, Validate([]rune{}))
}

func TestStartingUnitLength(t *testing.T) {
	assert.Equal(t, 1, StartingUnitLength(byte('a')))
	assert.Equal(t, 2, StartingUnitLength(byte(0xC2)))
	assert.Equal(t, 3, StartingUnitLength(byte(0xE0)))
	assert.Equal(t, 4, StartingUnitLength(byte(0xF0)))
	assert.Equal(t, 0, StartingUnitLength(byte(0x80))) // continuation byte
	assert.Equal(t, 0, StartingUnitLength(byte(0xC0))) // overlong lead

	assert.Equal(t, 1, StartingUnitLength(uint16('a')))
	assert.Equal(t, 1, StartingUnitLength(uint16(0xDC00))) // low surrogate alone
	assert.Equal(t, 2, StartingUnitLength(uint16(0xD800))) // high surrogate

	assert.Equal(t, 1, StartingUnitLength(rune('a')))
}

func TestDecodeExhaustive(t *testing.T) {
	cp, err := DecodeExhaustive([]byte("日"))
	assert.NoError(t, err)
	assert.Equal(t, rune(0x65E5), cp)

	_, err = DecodeExhaustive([]byte{0xE6})
	assert.Error(t, err)
}

func TestNextResync(t *testing.T) {
	consumed, cp := Next([]byte("\xFFvalid"))
	assert.Equal(t, 1, consumed)
	assert.Equal(t, InvalidCodePoint, cp)

	consumed, cp = Next([]byte("valid"))
	assert.Equal(t, 1, consumed)
	assert.Equal(t, rune('v'), cp)
}

func TestCountCodePoints(t *testing.T) {
	assert.Equal(t, 2, CountCodePoints([]byte("日本")))
	assert.Equal(t, 0, CountCodePoints([]byte{}))
}

func TestTranscodeRoundTrip(t *testing.T) {
	src := []byte("hello, 日本 😀")

	utf16Units := TranscodeValid[byte, uint16](src)
	back := TranscodeValid[uint16, byte](utf16Units)
	assert.Equal(t, src, back)

	utf32Units := TranscodeValid[byte, rune](src)
	back32 := TranscodeValid[rune, byte](utf32Units)
	assert.Equal(t, src, back32)
}

func TestTranscodeInvalidReplacement(t *testing.T) {
	src := []byte{'a', 0xFF, 0xFE, 'b'}
	out := TranscodeInvalid[byte, rune](src)
	assert.Equal(t, []rune{'a', 0xFFFD, 'b'}, out)
}

func TestEncodeAsWide(t *testing.T) {
	u, err := EncodeAsWide('A', true)
	assert.NoError(t, err)
	assert.Equal(t, uint16('A'), u)

	_, err = EncodeAsWide(0x1F600, true) // 😀, non-BMP
	assert.Error(t, err)

	u, err = EncodeAsWide(0x1F600, false)
	assert.NoError(t, err)
	assert.NotZero(t, u)
}
