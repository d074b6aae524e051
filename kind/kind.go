// Package kind defines the closed set of argument kind tags the scanning
// engine dispatches on, and which format-string presentation letters each
// kind accepts. It exists as its own package so that both the format
// parser (which validates specifier/kind compatibility) and the root scn
// package (which maps Go destination types to kind tags) can depend on it
// without an import cycle between them.
package kind

// Kind is a closed tag identifying the shape of a single argument slot.
type Kind int

const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Bool
	Float32
	Float64
	Rune   // single code point, destination *rune
	String // destination *string
	Custom // caller-supplied parse function
)

// Int32 is never produced by the root package's kindOf: *int32 and *rune
// are the same Go type, and that ambiguity resolves to Rune. It stays in
// the tag set so Kind's cases mirror Go's full integer width set.

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint:
		return "uint"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Bool:
		return "bool"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Rune:
		return "rune"
	case String:
		return "string"
	case Custom:
		return "custom"
	default:
		return "invalid"
	}
}

// IsInteger reports whether k is one of the signed or unsigned integer kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case Int, Int8, Int16, Int32, Int64, Uint, Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k is one of the floating-point kinds.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsNumeric reports whether k is an integer or floating-point kind; this
// drives the "{:L}" acceptance rule of spec §9: accepted for every numeric
// kind, ignored for every other kind.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}

// Presentation is the single letter (or the synthetic charclass marker)
// following the optional width/align/fill in a replacement field
// specifier; see spec §4.3's "presentation" production.
type Presentation byte

const (
	// None means no presentation letter was given; behavior is kind-dependent
	// default presentation per spec §4.4's "Default when absent" rule.
	None Presentation = 0

	Decimal     Presentation = 'd'
	DecimalI    Presentation = 'i'
	Unsigned    Presentation = 'u'
	Hex         Presentation = 'x'
	HexUpper    Presentation = 'X'
	Octal       Presentation = 'o'
	Binary      Presentation = 'b'
	BinaryUpper Presentation = 'B'
	Char        Presentation = 'c'
	CodePoint   Presentation = 'U'
	Str         Presentation = 's'
	FloatA      Presentation = 'a'
	FloatAUpper Presentation = 'A'
	FloatE      Presentation = 'e'
	FloatEUpper Presentation = 'E'
	FloatF      Presentation = 'f'
	FloatFUpper Presentation = 'F'
	FloatG      Presentation = 'g'
	FloatGUpper Presentation = 'G'

	// Class is synthetic: it is never parsed as a bare letter, but set by
	// the specifier parser when it encounters a "[...]" character class,
	// so that kind-compatibility checks have a presentation to test against.
	Class Presentation = '['
)

// IsCompatible reports whether presentation p may be used with an argument
// of kind k, per spec §4.4's per-type acceptance rules. Custom kinds accept
// every presentation: the caller's parse function interprets the spec body
// itself, opaquely to the engine (spec §4.5).
func IsCompatible(k Kind, p Presentation) bool {
	if k == Custom {
		return true
	}

	switch k {
	case Bool:
		return p == None

	case Rune:
		return p == None || p == Char || p == CodePoint

	case String:
		switch p {
		case None, Str, Char, Class:
			return true
		default:
			return false
		}

	default:
		if k.IsInteger() {
			switch p {
			case None, Decimal, DecimalI, Unsigned, Hex, HexUpper, Octal, Binary, BinaryUpper:
				return true
			default:
				return false
			}
		}
		if k.IsFloat() {
			switch p {
			case None, FloatA, FloatAUpper, FloatE, FloatEUpper, FloatF, FloatFUpper, FloatG, FloatGUpper:
				return true
			default:
				return false
			}
		}
		return false
	}
}
