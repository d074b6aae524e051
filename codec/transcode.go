package codec

import (
	"unicode/utf16"
	"unicode/utf8"
)

// unitsForCodePoint reports how many D-width units cp occupies once encoded.
func unitsForCodePoint[D Unit](cp rune) int {
	switch EncodingOf[D]() {
	case UTF8:
		return utf8.RuneLen(cp)
	case UTF16:
		if cp > 0xFFFF {
			return 2
		}
		return 1
	default: // UTF32
		return 1
	}
}

// encodeInto renders a single code point as a []D slice. The type switch on
// the zero value of D resolves at the call site's instantiation, so the
// any(...).([]D) assertions below always succeed.
func encodeInto[D Unit](cp rune) []D {
	var out []D
	switch any(out).(type) {
	case []byte:
		buf := make([]byte, utf8.RuneLen(cp))
		utf8.EncodeRune(buf, cp)
		out = any(buf).([]D)
	case []uint16:
		buf := utf16.Encode([]rune{cp})
		out = any(buf).([]D)
	case []rune:
		out = any([]rune{cp}).([]D)
	default:
		panic("codec: unreachable unit type")
	}
	return out
}

// CountTranscodedUnits sizes the D-width buffer needed to hold src (a
// validated S-width view) transcoded to D, for preallocation.
func CountTranscodedUnits[S Unit, D Unit](src []S) int {
	if EncodingOf[S]() == EncodingOf[D]() {
		return len(src)
	}

	n := 0
	rest := src
	for len(rest) > 0 {
		consumed, cp := NextValid(rest)
		rest = rest[consumed:]
		n += unitsForCodePoint[D](cp)
	}
	return n
}

// TranscodeValid converts a validated S-width view into D-width units.
// Its precondition is that src is valid Unicode.
func TranscodeValid[S Unit, D Unit](src []S) []D {
	if EncodingOf[S]() == EncodingOf[D]() {
		return any(append([]S(nil), src...)).([]D)
	}

	dst := make([]D, 0, CountTranscodedUnits[S, D](src))
	rest := src
	for len(rest) > 0 {
		consumed, cp := NextValid(rest)
		rest = rest[consumed:]
		dst = append(dst, encodeInto[D](cp)...)
	}
	return dst
}

// TranscodeInvalid converts src to D-width units, substituting exactly one
// U+FFFD for each maximal invalid subsequence and preserving every valid
// code point unchanged — spec §4.1's replacement semantics and §8 property 5.
func TranscodeInvalid[S Unit, D Unit](src []S) []D {
	var dst []D
	rest := src
	prevInvalid := false

	for len(rest) > 0 {
		consumed, cp := Next(rest)
		rest = rest[consumed:]

		if cp == InvalidCodePoint {
			if !prevInvalid {
				dst = append(dst, encodeInto[D](0xFFFD)...)
			}
			prevInvalid = true
			continue
		}

		prevInvalid = false
		dst = append(dst, encodeInto[D](cp)...)
	}

	return dst
}
