package scn

import (
	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/format"
	"github.com/rchilly/scn/kind"
	"github.com/rchilly/scn/locale"
	"github.com/rchilly/scn/source"
)

// scanString reads a *string destination under one of the four
// presentations kind.IsCompatible allows it: the default whitespace-
// delimited word, an explicit character class, or a fixed-width raw
// code-unit read (spec §4.4).
func scanString(src source.Source, spec format.Spec, loc locale.Locale, ptr *string) error {
	switch spec.Presentation {
	case kind.Char:
		return scanFixedWidthString(src, spec, ptr)

	case kind.Class:
		limit := -1
		if spec.HasWidth {
			limit = spec.Width
		}
		s, err := readRun(src, limit, spec.Class.Contains)
		if err != nil {
			return err
		}
		if s == "" {
			return emptyCaptureErr(src)
		}
		*ptr = s
		return nil

	default: // kind.None, kind.Str
		skipLeadingSpace(src, loc)

		limit := -1
		if spec.HasWidth {
			limit = spec.Width
		}
		s, err := readRun(src, limit, func(r rune) bool {
			return loc.Classify(r) != locale.Space
		})
		if err != nil {
			return err
		}
		if s == "" {
			return emptyCaptureErr(src)
		}
		*ptr = s
		return nil
	}
}

// scanFixedWidthString reads exactly spec.Width raw code units (one unit
// if no width is given) and decodes them into ptr, per spec §4.4's
// "{:Nc}" rule for string destinations: a fixed-width read in source code
// units rather than a natural, whitespace-bounded one.
func scanFixedWidthString(src source.Source, spec format.Spec, ptr *string) error {
	n := 1
	if spec.HasWidth {
		n = spec.Width
	}
	s, err := src.ReadRawUnits(n)
	if err != nil {
		return err
	}
	*ptr = s
	return nil
}

func emptyCaptureErr(src source.Source) error {
	if src.AtEnd() {
		return errs.New(errs.EndOfInput, "expected text, source exhausted")
	}
	return errs.New(errs.InvalidScannedValue, "expected non-empty text")
}
