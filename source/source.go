// Package source implements spec §4.2: a uniform scannable view over
// either a contiguous slice of source units or a streaming byte sequence,
// tracking the consumed prefix and yielding a faithful suffix.
//
// Every consumer above this package (the format interpreter and the
// per-type parsers in the root scn package) works purely in terms of code
// points and unit counts; which of the three encodings backs a given
// Source, and whether it's a slice or a stream, is invisible past this
// boundary.
package source

import "github.com/rchilly/scn/codec"

// Source is a scan source: either a contiguous view of 8/16/32-bit code
// units or an erased forward byte sequence backed by a streaming buffer
// (spec §3's "Source range").
type Source interface {
	// PeekRune decodes the next code point without consuming it. units is
	// the number of source units it occupies (pass to Advance to consume
	// it). ok is false only at end of input; an encoding failure still
	// reports ok=true with cp == codec.InvalidCodePoint, letting a caller
	// distinguish "nothing left" from "garbage present."
	PeekRune() (cp rune, units int, ok bool)

	// Advance consumes exactly units source units, as counted by PeekRune
	// or ReadRawUnits. Consumed units are never re-yielded.
	Advance(units int)

	// AtEnd reports whether the source has been exhausted. Advancing past
	// end is not itself an error (spec §4.2); AtEnd lets a caller that
	// demanded more input report end-of-input explicitly.
	AtEnd() bool

	// Encoding reports which of the three encodings this source decodes.
	Encoding() codec.Encoding

	// ReadRawUnits consumes exactly n raw source units — not code points —
	// and returns them transcoded to a UTF-8 string, for the fixed-width
	// "c" presentation of spec §4.4. It fails with errs.LengthTooShort if
	// fewer than n units remain, or errs.InvalidSourceEncoding if the
	// window cuts a code point in half.
	ReadRawUnits(n int) (string, error)

	// Suffix returns the faithful remaining range, per spec §3's
	// "Result" invariant.
	Suffix() Suffix
}

// Suffix is the portion of the input source remaining after a scan call.
type Suffix interface {
	// String renders the remaining input as UTF-8, transcoding as needed.
	String() string
	// IsEmpty reports whether nothing remains.
	IsEmpty() bool
}
