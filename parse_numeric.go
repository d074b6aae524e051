package scn

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/format"
	"github.com/rchilly/scn/kind"
	"github.com/rchilly/scn/locale"
	"github.com/rchilly/scn/source"
	"golang.org/x/exp/constraints"
)

// scanSigned reads a signed integer token bounded by spec's width, in the
// base its presentation letter selects, and assigns it into ptr after an
// strconv.ParseInt range check at bitSize.
func scanSigned[T constraints.Signed](src source.Source, spec format.Spec, loc locale.Locale, bitSize int, ptr *T) error {
	tok, base, err := scanIntToken(src, spec, loc, spec.Presentation, true)
	if err != nil {
		return err
	}

	v, err := strconv.ParseInt(tok, base, bitSize)
	if err != nil {
		return numericError(tok, "integer", err)
	}

	*ptr = T(v)
	return nil
}

// scanUnsigned is scanSigned's unsigned counterpart; unsigned fields do
// not accept a leading sign.
func scanUnsigned[T constraints.Unsigned](src source.Source, spec format.Spec, loc locale.Locale, bitSize int, ptr *T) error {
	tok, base, err := scanIntToken(src, spec, loc, spec.Presentation, false)
	if err != nil {
		return err
	}

	v, err := strconv.ParseUint(tok, base, bitSize)
	if err != nil {
		return numericError(tok, "integer", err)
	}

	*ptr = T(v)
	return nil
}

// scanFloat reads a floating-point token under loc's decimal separator
// and assigns it into ptr after an strconv.ParseFloat range check.
func scanFloat[T constraints.Float](src source.Source, spec format.Spec, loc locale.Locale, bitSize int, ptr *T) error {
	tok, err := scanFloatToken(src, spec, loc)
	if err != nil {
		return err
	}

	v, err := strconv.ParseFloat(tok, bitSize)
	if err != nil {
		return numericError(tok, "floating-point number", err)
	}

	*ptr = T(v)
	return nil
}

func numericError(tok, what string, cause error) error {
	var numErr *strconv.NumError
	if errors.As(cause, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return errs.Wrap(errs.ValueOutOfRange, cause, "%q is out of range for a %s", tok, what)
	}
	return errs.Wrap(errs.InvalidScannedValue, cause, "%q is not a valid %s", tok, what)
}

func baseForPresentation(p kind.Presentation) int {
	switch p {
	case kind.Hex, kind.HexUpper:
		return 16
	case kind.Octal:
		return 8
	case kind.Binary, kind.BinaryUpper:
		return 2
	case kind.DecimalI:
		return 0
	default:
		return 10
	}
}

func isDigitForBase(r rune, base int) bool {
	switch base {
	case 2:
		return r == '0' || r == '1'
	case 8:
		return r >= '0' && r <= '7'
	case 16:
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	default:
		return r >= '0' && r <= '9'
	}
}

// skipLeadingSpace discards a run of code points loc classifies as space,
// ahead of a numeric or default-presentation string token (spec §4.7: each
// such parser "consumes leading whitespace"). The skipped run is never
// counted against a field's width — width bounds the value itself, not the
// space separating it from whatever came before.
func skipLeadingSpace(src source.Source, loc locale.Locale) {
	for {
		cp, units, ok := src.PeekRune()
		if !ok || loc.Classify(cp) != locale.Space {
			return
		}
		src.Advance(units)
	}
}

// scanIntToken collects the text of one integer literal off src, honoring
// spec's width bound (counted in code points, since digits are always
// one code point wide) and the base its presentation implies. For
// presentation 'i' (scnlib's "detect base from the text itself" verb) a
// leading "0x"/"0o"/"0b" prefix, or a bare leading zero, switches the
// base the remaining digits are matched against; strconv.ParseInt(s, 0,
// ...) then reinterprets that same prefix when parsing.
func scanIntToken(src source.Source, spec format.Spec, loc locale.Locale, presentation kind.Presentation, allowSign bool) (string, int, error) {
	skipLeadingSpace(src, loc)

	var b strings.Builder
	limit := -1
	if spec.HasWidth {
		limit = spec.Width
	}
	count := 0

	cp, units, ok := src.PeekRune()
	if allowSign && ok && (cp == '+' || cp == '-') && (limit < 0 || count < limit) {
		b.WriteRune(cp)
		src.Advance(units)
		count++
		cp, units, ok = src.PeekRune()
	}

	base := baseForPresentation(presentation)

	// An explicit hex/octal/binary presentation already fixes the base,
	// so a "0x"/"0o"/"0b" prefix (scnlib writes one on scan, e.g. "0xff")
	// is optional and, if present, consumed without being handed to
	// strconv.ParseInt — which takes the prefix for granted only when
	// base is 0, not when it is given explicitly.
	var prefixLo, prefixHi byte
	switch base {
	case 16:
		prefixLo, prefixHi = 'x', 'X'
	case 8:
		prefixLo, prefixHi = 'o', 'O'
	case 2:
		prefixLo, prefixHi = 'b', 'B'
	}
	if prefixLo != 0 && ok && cp == '0' && (limit < 0 || count < limit) {
		save := cp
		src.Advance(units)
		count++
		next, nUnits, nOK := src.PeekRune()
		if nOK && (byte(next) == prefixLo || byte(next) == prefixHi) && (limit < 0 || count < limit) {
			src.Advance(nUnits)
			count++
			cp, units, ok = src.PeekRune()
		} else {
			b.WriteRune(save)
			cp, units, ok = next, nUnits, nOK
		}
	}

	if presentation == kind.DecimalI && ok && cp == '0' && (limit < 0 || count < limit) {
		b.WriteRune(cp)
		src.Advance(units)
		count++
		cp, units, ok = src.PeekRune()

		switch {
		case ok && (cp == 'x' || cp == 'X') && (limit < 0 || count < limit):
			b.WriteRune(cp)
			src.Advance(units)
			count++
			base = 16
			cp, units, ok = src.PeekRune()
		case ok && (cp == 'o' || cp == 'O') && (limit < 0 || count < limit):
			b.WriteRune(cp)
			src.Advance(units)
			count++
			base = 8
			cp, units, ok = src.PeekRune()
		case ok && (cp == 'b' || cp == 'B') && (limit < 0 || count < limit):
			b.WriteRune(cp)
			src.Advance(units)
			count++
			base = 2
			cp, units, ok = src.PeekRune()
		default:
			base = 8
		}
	}

	matchBase := base
	if matchBase == 0 {
		matchBase = 10
	}

	thousandsSep := loc.ThousandsSeparator()

digits:
	for ok && (limit < 0 || count < limit) {
		switch {
		case isDigitForBase(cp, matchBase):
			b.WriteRune(cp)
		case thousandsSep != 0 && cp == thousandsSep:
			// Grouping separators are consumed but never written into the
			// token handed to strconv, which knows nothing about them.
		default:
			break digits
		}
		src.Advance(units)
		count++
		cp, units, ok = src.PeekRune()
	}

	tok := b.String()
	if tok == "" || tok == "+" || tok == "-" {
		if !ok {
			return "", 0, errs.New(errs.EndOfInput, "expected an integer, source exhausted")
		}
		return "", 0, errs.New(errs.InvalidScannedValue, "expected an integer")
	}

	return tok, base, nil
}

// scanFloatToken collects the text of one floating-point literal off
// src, translating loc's decimal separator to '.' so the result can be
// handed directly to strconv.ParseFloat.
func scanFloatToken(src source.Source, spec format.Spec, loc locale.Locale) (string, error) {
	skipLeadingSpace(src, loc)

	var b strings.Builder
	limit := -1
	if spec.HasWidth {
		limit = spec.Width
	}
	count := 0
	sawDigit := false
	decSep := loc.DecimalSeparator()
	thousandsSep := loc.ThousandsSeparator()
	pastIntPart := false

	cp, units, ok := src.PeekRune()
	if ok && (cp == '+' || cp == '-') && (limit < 0 || count < limit) {
		b.WriteRune(cp)
		src.Advance(units)
		count++
		cp, units, ok = src.PeekRune()
	}

loop:
	for ok && (limit < 0 || count < limit) {
		switch {
		case cp >= '0' && cp <= '9':
			sawDigit = true
			b.WriteRune(cp)
		case cp == decSep:
			pastIntPart = true
			b.WriteRune('.')
		case thousandsSep != 0 && cp == thousandsSep && !pastIntPart:
			// Grouping separators in the integer part are consumed but
			// never written into the token handed to strconv.ParseFloat.
		case cp == 'e' || cp == 'E':
			pastIntPart = true
			b.WriteRune(cp)
			src.Advance(units)
			count++
			cp, units, ok = src.PeekRune()
			if ok && (cp == '+' || cp == '-') && (limit < 0 || count < limit) {
				b.WriteRune(cp)
				src.Advance(units)
				count++
				cp, units, ok = src.PeekRune()
			}
			continue loop
		default:
			break loop
		}
		src.Advance(units)
		count++
		cp, units, ok = src.PeekRune()
	}

	if !sawDigit {
		if !ok {
			return "", errs.New(errs.EndOfInput, "expected a floating-point number, source exhausted")
		}
		return "", errs.New(errs.InvalidScannedValue, "expected a floating-point number")
	}

	return b.String(), nil
}
