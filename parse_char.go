package scn

import (
	"github.com/rchilly/scn/codec"
	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/format"
	"github.com/rchilly/scn/source"
)

// scanRune reads exactly one code point into a *rune destination (stored
// here as *int32, since rune and int32 are the same Go type — see
// kindOf). A width is only meaningful as a sanity check: scanning a
// single code point into a single-code-point destination, by definition,
// reads exactly one.
func scanRune(src source.Source, spec format.Spec, ptr *int32) error {
	if spec.HasWidth && spec.Width != 1 {
		return errs.New(errs.InvalidFormatString, "a rune destination cannot take a width other than 1, got %d", spec.Width)
	}

	cp, units, ok := src.PeekRune()
	if !ok {
		return errs.New(errs.EndOfInput, "expected a character, source exhausted")
	}
	if cp == codec.InvalidCodePoint {
		return errs.New(errs.InvalidSourceEncoding, "source is not valid Unicode at the current position")
	}
	src.Advance(units)

	*ptr = int32(cp)
	return nil
}
