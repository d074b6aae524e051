// Package errs implements the closed error taxonomy of spec §7: a fixed
// set of failure kinds raised by the scanning engine, carried by a single
// structured error type rather than a grab-bag of ad hoc sentinel values.
//
// This generalizes the teacher's flat errors.New/fmt.Errorf("%w: ...", Err...)
// idiom (see the original unfmt package's main.go) into something callers
// can branch on programmatically, which a typed scanning engine needs: a
// caller retrying on length-too-short behaves differently than one that
// gives up on invalid-scanned-value.
package errs

import (
	"errors"
	"fmt"
)

// Kind is one of the closed set of failure classes from spec §7.
type Kind int

const (
	// InvalidFormatString covers grammar violations, mixed auto/manual
	// argument ids, invalid UTF in a literal span, unknown presentation
	// letters, and malformed character classes.
	InvalidFormatString Kind = iota + 1

	// InvalidSourceEncoding is raised when the source is not valid Unicode
	// in its declared encoding and the specifier requires validated code
	// points.
	InvalidSourceEncoding

	// InvalidScannedValue is raised when a per-type parser could not
	// produce a value from the matched text.
	InvalidScannedValue

	// ValueOutOfRange covers numeric overflow and non-BMP code points
	// narrowed into a 16-bit wide target when disallowed.
	ValueOutOfRange

	// LengthTooShort is raised when the source ends before a specifier's
	// required width is satisfied.
	LengthTooShort

	// EndOfInput is raised when the source is empty where a value was
	// required.
	EndOfInput

	// ArgumentAlreadyScanned is raised on reuse of an argument id.
	ArgumentAlreadyScanned
)

func (k Kind) String() string {
	switch k {
	case InvalidFormatString:
		return "invalid-format-string"
	case InvalidSourceEncoding:
		return "invalid-source-encoding"
	case InvalidScannedValue:
		return "invalid-scanned-value"
	case ValueOutOfRange:
		return "value-out-of-range"
	case LengthTooShort:
		return "length-too-short"
	case EndOfInput:
		return "end-of-input"
	case ArgumentAlreadyScanned:
		return "argument-already-scanned"
	default:
		return "unknown-error"
	}
}

// Error is the structured error the engine returns. Offset, when
// non-negative, is the source-unit position at which the failure was
// detected, for callers that want to report it alongside the returned
// suffix.
type Error struct {
	Kind   Kind
	Msg    string
	Offset int
	Cause  error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, target) match when target is (or wraps) an
// *Error of the same Kind, e.g. errors.Is(err, errs.New(errs.InvalidFormatString, "")),
// in addition to the usual identity comparison errors.Is already does for
// *Error values.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// New builds an *Error with no known source offset.
func New(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Offset: -1}
}

// At builds an *Error with a known source offset.
func At(k Kind, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Offset: offset}
}

// Wrap builds an *Error carrying cause as its Unwrap() target.
func Wrap(k Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Offset: -1, Cause: cause}
}

// KindOf extracts the Kind of err if it is (or wraps) an *Error, and ok=false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
