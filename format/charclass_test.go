package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCharClassMergesRangesSharingLowerBound(t *testing.T) {
	c, err := parseCharClass([]rune("0-90"))
	assert.NoError(t, err)

	for r := rune('0'); r <= '9'; r++ {
		assert.True(t, c.Contains(r), "expected %q to be in the merged range", r)
	}
	assert.False(t, c.Contains('a'))
}

func TestParseCharClassMergesOverlappingPosixShortcuts(t *testing.T) {
	c, err := parseCharClass([]rune("[:alnum:]_"))
	assert.NoError(t, err)

	assert.True(t, c.Contains('a'))
	assert.True(t, c.Contains('5'))
	assert.True(t, c.Contains('_'))
	assert.False(t, c.Contains(' '))
}

func TestParseCharClassNegation(t *testing.T) {
	c, err := parseCharClass([]rune("^0-9"))
	assert.NoError(t, err)

	assert.False(t, c.Contains('5'))
	assert.True(t, c.Contains('a'))
}
