package scn

import (
	"github.com/rchilly/scn/codec"
	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/source"
)

// readRun consumes the maximal run of code points src offers for which
// accept returns true, bounded by limit code points (limit < 0 means
// unbounded), and returns the consumed text. Hitting a code point the
// codec layer could not validate stops the run with invalid-source-
// encoding rather than silently folding it into U+FFFD: a specifier that
// reads natural text requires validated code points (spec §7's table).
func readRun(src source.Source, limit int, accept func(rune) bool) (string, error) {
	var b []rune
	count := 0
	for limit < 0 || count < limit {
		cp, units, ok := src.PeekRune()
		if !ok {
			break
		}
		if cp == codec.InvalidCodePoint {
			return "", errs.New(errs.InvalidSourceEncoding, "source is not valid Unicode at the current position")
		}
		if !accept(cp) {
			break
		}
		b = append(b, cp)
		src.Advance(units)
		count++
	}
	return string(b), nil
}
