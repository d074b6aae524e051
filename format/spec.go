package format

import (
	"strconv"

	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/kind"
)

// Align is the alignment a string or character-class scanner's width and
// fill apply under (spec §3's replacement-field data model).
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Spec is a parsed replacement-field specifier body (spec §3).
type Spec struct {
	Align        Align
	Fill         rune
	Width        int
	HasWidth     bool
	Locale       bool
	Presentation kind.Presentation
	Class        *CharClass
}

// parseSpec parses a specifier body (the text between ':' and the closing
// '}', not including either delimiter) against the grammar of spec §4.3:
//
//	spec-body := (fill? align)? width? ['L'] presentation? charclass?
//
// k is the destination's kind tag, consulted only to validate
// presentation/class compatibility (spec §4.4); parseSpec itself never
// touches a Source, so the exact same call validates a specifier whether
// it runs at definition time (format.Check) or scan time (format.Run).
func parseSpec(body string, k kind.Kind) (Spec, error) {
	r := []rune(body)
	var spec Spec
	spec.Fill = ' '

	i := 0

	if i < len(r) && isAlign(r[i]) {
		spec.Align = alignOf(r[i])
		i++
	} else if i+1 < len(r) && isAlign(r[i+1]) {
		spec.Fill = r[i]
		spec.Align = alignOf(r[i+1])
		i += 2
	}

	widthStart := i
	for i < len(r) && r[i] >= '0' && r[i] <= '9' {
		i++
	}
	if i > widthStart {
		w, err := strconv.Atoi(string(r[widthStart:i]))
		if err != nil || w == 0 {
			return Spec{}, errs.New(errs.InvalidFormatString, "invalid width in specifier '%s'", body)
		}
		spec.Width = w
		spec.HasWidth = true
	}

	if i < len(r) && r[i] == 'L' {
		spec.Locale = true
		i++
	}

	if i < len(r) {
		switch r[i] {
		case '[':
			end := findClassEnd(r, i)
			if end < 0 {
				return Spec{}, errs.New(errs.InvalidFormatString, "unterminated character class in specifier '%s'", body)
			}
			class, err := parseCharClass(r[i+1 : end])
			if err != nil {
				return Spec{}, err
			}
			spec.Class = class
			spec.Presentation = kind.Class
			i = end + 1

		default:
			p := kind.Presentation(r[i])
			if !isPresentationLetter(p) {
				return Spec{}, errs.New(errs.InvalidFormatString, "unknown presentation '%c' in specifier '%s'", r[i], body)
			}
			spec.Presentation = p
			i++
		}
	}

	if i != len(r) {
		return Spec{}, errs.New(errs.InvalidFormatString, "unexpected trailing text %q in specifier '%s'", string(r[i:]), body)
	}

	if !kind.IsCompatible(k, spec.Presentation) {
		return Spec{}, errs.New(errs.InvalidFormatString, "presentation '%c' is not valid for a %s argument", byte(spec.Presentation), k)
	}

	return spec, nil
}

func isAlign(r rune) bool { return r == '<' || r == '>' || r == '^' }

func alignOf(r rune) Align {
	switch r {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	case '^':
		return AlignCenter
	default:
		return AlignDefault
	}
}

func isPresentationLetter(p kind.Presentation) bool {
	switch p {
	case kind.Decimal, kind.DecimalI, kind.Unsigned, kind.Hex, kind.HexUpper,
		kind.Octal, kind.Binary, kind.BinaryUpper, kind.Char, kind.CodePoint,
		kind.Str, kind.FloatA, kind.FloatAUpper, kind.FloatE, kind.FloatEUpper,
		kind.FloatF, kind.FloatFUpper, kind.FloatG, kind.FloatGUpper:
		return true
	default:
		return false
	}
}

// findClassEnd finds the index of the ']' closing the class that opens at
// r[start] == '['. There is no escaping inside a class body, but a nested
// "[:name:]" POSIX token carries its own ']' that must be skipped over, or
// a class like "[[:alpha:]]" would appear to close at the POSIX token's
// ']' instead of the outer one.
func findClassEnd(r []rune, start int) int {
	i := start + 1
	for i < len(r) {
		if r[i] == '[' && i+1 < len(r) && r[i+1] == ':' {
			j := i + 2
			for j < len(r) && r[j] != ':' {
				j++
			}
			if j+1 < len(r) && r[j] == ':' && r[j+1] == ']' {
				i = j + 2
				continue
			}
		}
		if r[i] == ']' {
			return i
		}
		i++
	}
	return -1
}
