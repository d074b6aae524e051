package scn

import (
	"strconv"

	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/format"
	"github.com/rchilly/scn/source"
)

// boolRunes mirrors the teacher's own leading-character allowlist for a
// bool token (see assign.go's boolRunes), extended with strconv's
// capitalized forms so that "True"/"False" scan too.
const boolRunes = "01truefalseTRUEFALSETrueFalse"

func isBoolRune(r rune) bool {
	for _, b := range boolRunes {
		if b == r {
			return true
		}
	}
	return false
}

// scanBool reads a bool token bounded by spec's width and parses it with
// strconv.ParseBool, accepting every literal form strconv itself does.
func scanBool(src source.Source, spec format.Spec, ptr *bool) error {
	limit := -1
	if spec.HasWidth {
		limit = spec.Width
	}
	tok, err := readRun(src, limit, isBoolRune)
	if err != nil {
		return err
	}
	if tok == "" {
		if src.AtEnd() {
			return errs.New(errs.EndOfInput, "expected a boolean, source exhausted")
		}
		return errs.New(errs.InvalidScannedValue, "expected a boolean")
	}

	b, err := strconv.ParseBool(tok)
	if err != nil {
		return errs.Wrap(errs.InvalidScannedValue, err, "%q is not a valid boolean", tok)
	}

	*ptr = b
	return nil
}
