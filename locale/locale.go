// Package locale defines the locale collaborator interface spec §6
// consumes: classification and numeric-facet hooks consulted only when a
// replacement field carries the "L" flag (spec §4.4). Locale database
// access itself is explicitly out of scope (spec §1's "Out of scope");
// this package ships only the interface plus the two trivial, locale-
// database-free implementations the engine needs by default and for
// testing the "L" flag's effect (spec §8 end-to-end scenarios).
package locale

// Class is the classification a locale assigns to a code point, mirroring
// the classify() collaborator of spec §6.
type Class int

const (
	Other Class = iota
	Alpha
	Digit
	Space
)

// Locale is the locale collaborator interface: classify(code point),
// decimal separator, and thousands separator. It has no numeric parsing
// hook; numbers are parsed by strconv after the separators have been
// translated. The engine treats a Locale as immutable for the duration
// of a call (spec §5).
type Locale interface {
	Classify(r rune) Class
	DecimalSeparator() rune
	ThousandsSeparator() rune
}

// c implements the locale-independent "C" rules spec §4.4 falls back to
// when no "L" flag is present: decimal point '.', no grouping.
type c struct{}

// C returns the default, locale-database-free locale used whenever a
// replacement field omits "L".
func C() Locale { return c{} }

func (c) Classify(r rune) Class {
	switch {
	case r >= '0' && r <= '9':
		return Digit
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return Alpha
	case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
		return Space
	default:
		return Other
	}
}

func (c) DecimalSeparator() rune   { return '.' }
func (c) ThousandsSeparator() rune { return 0 }

// commaDecimal is a minimal non-default locale, used to exercise the "L"
// flag in spec §8's end-to-end scenario: "1,5" parses as 1.5 only under a
// locale whose decimal separator is ','.
type commaDecimal struct{}

// CommaDecimal returns a locale identical to C() except that its decimal
// separator is ',' and its thousands separator is '.', as in e.g. French
// or German numeric conventions. It exists to make the "L" flag's effect
// testable without depending on a real locale database.
func CommaDecimal() Locale { return commaDecimal{} }

func (commaDecimal) Classify(r rune) Class    { return c{}.Classify(r) }
func (commaDecimal) DecimalSeparator() rune   { return ',' }
func (commaDecimal) ThousandsSeparator() rune { return '.' }
