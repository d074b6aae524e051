package format

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/kind"
	"github.com/rchilly/scn/source"
)

func tracer() tracing.Trace {
	return tracing.Select("scn.format")
}

// Dispatcher is what Run drives a format string against: an argument list
// with erased element types, consulted only through its kind tag and a
// Scan hook that performs the actual typed read (spec §3's argument-model
// boundary between the grammar layer and the per-kind scanners).
type Dispatcher interface {
	NumArgs() int
	KindOf(id int) kind.Kind
	Scan(id int, src source.Source, spec Spec) error
}

// Check statically validates fmtStr against kinds without ever touching a
// Source: every replacement field's arg-id is in range, auto- and
// manual-indexing are not mixed, no id is referenced twice, every
// specifier is well-formed for its destination kind, and (the one rule
// Run does not enforce) every kind index is referenced at least once
// (spec §4.6).
func Check(fmtStr string, kinds []kind.Kind) error {
	seen, err := walk(fmtStr, len(kinds), func(id int) kind.Kind { return kinds[id] }, nil, nil)
	if err != nil {
		return err
	}

	for id, ok := range seen {
		if !ok {
			return errs.New(errs.InvalidFormatString, "argument %d is never referenced by the format string", id)
		}
	}
	return nil
}

// Run parses fmtStr against src, feeding each replacement field to d and
// matching literal text anchored at the source's current position. It
// returns the unconsumed suffix of src and the first error encountered;
// a partial match still yields every assignment d.Scan already made
// before the failure (spec §5's ordering and propagation policy).
func Run(fmtStr string, src source.Source, d Dispatcher) (source.Suffix, error) {
	onLiteral := func(lit string) error {
		return matchLiteral(src, lit)
	}
	onField := func(id int, spec Spec) error {
		return d.Scan(id, src, spec)
	}

	_, err := walk(fmtStr, d.NumArgs(), d.KindOf, onLiteral, onField)
	return src.Suffix(), err
}

// matchLiteral consumes lit from src code point by code point. It is
// anchored: unlike the substring search a printf-style matcher might use,
// a literal must match starting at the source's current position, per
// spec §4's positional (not search-based) model of scanning.
func matchLiteral(src source.Source, lit string) error {
	for _, want := range lit {
		got, units, ok := src.PeekRune()
		if !ok {
			return errs.New(errs.EndOfInput, "expected %q, source exhausted", lit)
		}
		if got != want {
			return errs.New(errs.InvalidScannedValue, "expected literal %q", lit)
		}
		src.Advance(units)
	}
	return nil
}

// walk is the single grammar pass spec §4.3 describes, shared verbatim by
// Check and Run. It operates on fmtStr's raw bytes rather than a []rune
// conversion so that invalid UTF-8 inside a literal run can still be
// detected and reported (converting to []rune up front would silently
// rewrite it to U+FFFD). onLiteral and onField may be nil, in which case
// that callback is a no-op — Check passes nil for both.
func walk(fmtStr string, numArgs int, kindOf func(int) kind.Kind, onLiteral func(string) error, onField func(int, Spec) error) ([]bool, error) {
	seen := make([]bool, numArgs)
	auto := 0
	mode := indexModeUnset

	var lit strings.Builder
	flushLiteral := func() error {
		if lit.Len() == 0 {
			return nil
		}
		s := lit.String()
		lit.Reset()
		if !utf8.ValidString(s) {
			return errs.New(errs.InvalidFormatString, "invalid encoding in format string literal %q", s)
		}
		if onLiteral != nil {
			return onLiteral(s)
		}
		return nil
	}

	i := 0
	for i < len(fmtStr) {
		c := fmtStr[i]

		switch c {
		case '{':
			if i+1 < len(fmtStr) && fmtStr[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			if err := flushLiteral(); err != nil {
				return nil, err
			}

			end := strings.IndexByte(fmtStr[i:], '}')
			if end < 0 {
				return nil, errs.New(errs.InvalidFormatString, "unterminated replacement field at offset %d", i)
			}
			field := fmtStr[i+1 : i+end]
			i += end + 1

			id, spec, err := parseField(field, numArgs, kindOf, &auto, &mode)
			if err != nil {
				return nil, err
			}
			if seen[id] {
				return nil, errs.New(errs.ArgumentAlreadyScanned, "argument %d is scanned by more than one replacement field", id)
			}
			seen[id] = true

			if onField != nil {
				tracer().Debugf("field %d: presentation=%c width=%d", id, byte(spec.Presentation), spec.Width)
				if err := onField(id, spec); err != nil {
					return nil, err
				}
			}

		case '}':
			if i+1 < len(fmtStr) && fmtStr[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, errs.New(errs.InvalidFormatString, "unmatched '}' at offset %d", i)

		default:
			lit.WriteByte(c)
			i++
		}
	}

	if err := flushLiteral(); err != nil {
		return nil, err
	}

	return seen, nil
}

type indexMode int

const (
	indexModeUnset indexMode = iota
	indexModeAuto
	indexModeManual
)

// parseField parses the text between '{' and '}' of a single replacement
// field: an optional arg-id, optionally followed by ':' and a specifier
// body. auto and mode thread the auto/manual-indexing state across calls
// within one walk, enforcing that a format string never mixes "{}" with
// "{0}"-style fields (spec §4.3).
func parseField(field string, numArgs int, kindOf func(int) kind.Kind, auto *int, mode *indexMode) (int, Spec, error) {
	idPart, specPart, hasSpec := field, "", false
	if at := strings.IndexByte(field, ':'); at >= 0 {
		idPart, specPart, hasSpec = field[:at], field[at+1:], true
	}

	var id int
	if idPart == "" {
		if *mode == indexModeManual {
			return 0, Spec{}, errs.New(errs.InvalidFormatString, "cannot mix automatic and manual argument indexing")
		}
		*mode = indexModeAuto
		id = *auto
		*auto++
	} else {
		if *mode == indexModeAuto {
			return 0, Spec{}, errs.New(errs.InvalidFormatString, "cannot mix automatic and manual argument indexing")
		}
		*mode = indexModeManual
		n, err := strconv.Atoi(idPart)
		if err != nil || n < 0 {
			return 0, Spec{}, errs.New(errs.InvalidFormatString, "invalid argument id %q", idPart)
		}
		id = n
	}

	if id >= numArgs {
		return 0, Spec{}, errs.New(errs.InvalidFormatString, "argument id %d is out of range (%d argument(s) given)", id, numArgs)
	}

	var spec Spec
	var err error
	if hasSpec {
		spec, err = parseSpec(specPart, kindOf(id))
	} else {
		spec, err = parseSpec("", kindOf(id))
	}
	if err != nil {
		return 0, Spec{}, err
	}

	return id, spec, nil
}
