package scn

import (
	"testing"

	"github.com/rchilly/scn/format"
	"github.com/rchilly/scn/locale"
	"github.com/rchilly/scn/source"
	"github.com/stretchr/testify/assert"
)

func TestScanTwoInts(t *testing.T) {
	var a, b int
	res, err := Scan(source.NewString("42 -7 rest"), "{} {}", &a, &b)
	assert.NoError(t, err)
	assert.Equal(t, 42, a)
	assert.Equal(t, -7, b)
	assert.Equal(t, " rest", res.Rest())
}

func TestScanSkipsExtraLeadingWhitespace(t *testing.T) {
	var a, b int
	res, err := Scan(source.NewString("42  -7 rest"), "{} {}", &a, &b)
	assert.NoError(t, err)
	assert.Equal(t, 42, a)
	assert.Equal(t, -7, b)
	assert.Equal(t, " rest", res.Rest())
}

func TestScanStringSkipsExtraLeadingWhitespace(t *testing.T) {
	var s string
	res, err := Scan(source.NewString("  hello world"), "{}", &s)
	assert.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Equal(t, " world", res.Rest())
}

func TestScanFloatGroupingSeparator(t *testing.T) {
	var f float64
	res, err := ScanLocalized(locale.CommaDecimal(), source.NewString("1.234,5 rest"), "{:L}", &f)
	assert.NoError(t, err)
	assert.Equal(t, 1234.5, f)
	assert.Equal(t, " rest", res.Rest())
}

func TestScanCharClass(t *testing.T) {
	var s string
	res, err := Scan(source.NewString("hello world"), "{:[A-Za-z]}", &s)
	assert.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Equal(t, " world", res.Rest())
}

func TestScanFixedWidthTooShort(t *testing.T) {
	var s string
	res, err := Scan(source.NewString("abc"), "{:5c}", &s)
	assert.Error(t, err)
	assert.Equal(t, "abc", res.Rest())
}

func TestScanManualIndexing(t *testing.T) {
	var a, b int
	res, err := Scan(source.NewString("1 2"), "{1} {0}", &a, &b)
	assert.NoError(t, err)
	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)
	assert.True(t, res.Exhausted())
}

func TestScanMixedIndexingRejected(t *testing.T) {
	var a, b int
	_, err := Scan(source.NewString("1 2"), "{} {0}", &a, &b)
	assert.Error(t, err)
}

func TestScanValueRune(t *testing.T) {
	var r int32
	res, err := ScanValue(source.NewString("日本"), &r)
	assert.NoError(t, err)
	assert.Equal(t, rune(0x65E5), rune(r))
	assert.Equal(t, "本", res.Rest())
}

func TestScanHexInt(t *testing.T) {
	var v int
	res, err := Scan(source.NewString("0xff"), "{:x}", &v)
	assert.NoError(t, err)
	assert.Equal(t, 255, v)
	assert.True(t, res.Exhausted())
}

func TestScanLocaleNeutralWithoutFlag(t *testing.T) {
	var f float64
	res, err := ScanLocalized(locale.CommaDecimal(), source.NewString("1,5"), "{}", &f)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, f)
	assert.Equal(t, ",5", res.Rest())
}

func TestScanLocaleAppliedWithFlag(t *testing.T) {
	var f float64
	res, err := ScanLocalized(locale.CommaDecimal(), source.NewString("1,5"), "{:L}", &f)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, f)
	assert.True(t, res.Exhausted())
}

func TestScanInvalidSourceEncoding(t *testing.T) {
	var s string
	_, err := Scan(source.NewString("\xffvalid"), "{}", &s)
	assert.Error(t, err)
}

func TestScanValueIdempotence(t *testing.T) {
	var a, b int
	_, err1 := ScanValue(source.NewString("123 rest"), &a)
	_, err2 := Scan(source.NewString("123 rest"), "{}", &b)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, a, b)
}

func TestCompileAndReuseScanner(t *testing.T) {
	var a, b int
	s, err := Compile("{} {}", &a, &b)
	assert.NoError(t, err)

	_, err = s.Scan(source.NewString("1 2"), &a, &b)
	assert.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)

	_, err = s.Scan(source.NewString("3 4"), &a, &b)
	assert.NoError(t, err)
	assert.Equal(t, 3, a)
	assert.Equal(t, 4, b)
}

func TestCompileRejectsNonExhaustiveFormat(t *testing.T) {
	var a, b int
	_, err := Compile("{0}", &a, &b)
	assert.Error(t, err)
}

func TestScanCustomFunc(t *testing.T) {
	var got string
	custom := Func(func(src source.Source, spec format.Spec) error {
		s, err := src.ReadRawUnits(3)
		if err != nil {
			return err
		}
		got = s
		return nil
	})

	res, err := Scan(source.NewString("abcdef"), "{}", custom)
	assert.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, "def", res.Rest())
}

// allSpaceLocale classifies every code point as space, which would make
// any locale-consulting word scan capture nothing. It exists only to prove
// that a non-numeric field's "L" flag is a true no-op: a String field
// scanned under it must still classify by the locale-independent "C"
// rules, never by this one.
type allSpaceLocale struct{}

func (allSpaceLocale) Classify(rune) locale.Class { return locale.Space }
func (allSpaceLocale) DecimalSeparator() rune     { return '.' }
func (allSpaceLocale) ThousandsSeparator() rune   { return 0 }

func TestScanLocaleFlagIgnoredForStringKind(t *testing.T) {
	var s string
	res, err := ScanLocalized(allSpaceLocale{}, source.NewString("hello world"), "{:L}", &s)
	assert.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Equal(t, " world", res.Rest())
}
