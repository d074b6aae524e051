package scn

import (
	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/format"
	"github.com/rchilly/scn/kind"
	"github.com/rchilly/scn/locale"
	"github.com/rchilly/scn/source"
)

// Func lets a caller supply its own scan logic for a replacement field,
// the escape hatch spec §4.5 calls "custom" arguments: the engine parses
// the field's grammar and specifier and hands the parsed Spec to the
// function, which reads from src itself; the engine applies no width,
// align or fill handling of its own to a custom field.
type Func func(src source.Source, spec format.Spec) error

// argument pairs one target with the kind tag it dispatches under. ptr
// holds the destination pointer for every kind except Custom, where fn
// holds the caller's scan function instead.
type argument struct {
	k   kind.Kind
	ptr interface{}
	fn  Func
}

// kindOf maps a Go destination to the kind tag the format grammar
// validates specifiers against. Note that Go's rune is int32 under the
// hood, so a bare *int32 is indistinguishable from *rune at the type
// level; this engine resolves the ambiguity in the more common
// direction, treating *int32 as a single-code-point Rune destination.
// Callers wanting a plain 32-bit integer destination should use *int64
// (or *uint32 for the unsigned width), matching how fmt.Sscanf's own
// verb set treats %c/%U.
func kindOf(target interface{}) (kind.Kind, error) {
	switch target.(type) {
	case *int:
		return kind.Int, nil
	case *int8:
		return kind.Int8, nil
	case *int16:
		return kind.Int16, nil
	case *int32: // == *rune
		return kind.Rune, nil
	case *int64:
		return kind.Int64, nil
	case *uint:
		return kind.Uint, nil
	case *uint8:
		return kind.Uint8, nil
	case *uint16:
		return kind.Uint16, nil
	case *uint32:
		return kind.Uint32, nil
	case *uint64:
		return kind.Uint64, nil
	case *bool:
		return kind.Bool, nil
	case *float32:
		return kind.Float32, nil
	case *float64:
		return kind.Float64, nil
	case *string:
		return kind.String, nil
	case Func:
		return kind.Custom, nil
	default:
		return kind.Invalid, errs.New(errs.InvalidFormatString, "unsupported scan destination type %T", target)
	}
}

// argsFrom builds the argument list a Dispatcher walks from the caller's
// raw targetPtrs slice.
func argsFrom(targetPtrs []interface{}) ([]argument, error) {
	args := make([]argument, len(targetPtrs))
	for i, t := range targetPtrs {
		k, err := kindOf(t)
		if err != nil {
			return nil, err
		}
		a := argument{k: k, ptr: t}
		if k == kind.Custom {
			a.fn = t.(Func)
		}
		args[i] = a
	}
	return args, nil
}

func kindsOf(args []argument) []kind.Kind {
	ks := make([]kind.Kind, len(args))
	for i, a := range args {
		ks[i] = a.k
	}
	return ks
}

// dispatcher implements format.Dispatcher over an argument list, routing
// each replacement field to the per-kind scanner that actually reads from
// src (parse_numeric.go, parse_string.go, parse_char.go, parse_bool.go).
type dispatcher struct {
	args []argument
	loc  locale.Locale
}

func (d *dispatcher) NumArgs() int            { return len(d.args) }
func (d *dispatcher) KindOf(id int) kind.Kind { return d.args[id].k }

func (d *dispatcher) Scan(id int, src source.Source, spec format.Spec) error {
	a := d.args[id]
	tracer().Debugf("scanning argument %d (%s)", id, a.k)

	if a.k == kind.Custom {
		return a.fn(src, spec)
	}

	l := resolveLocale(d.loc, a.k, spec)

	switch a.k {
	case kind.Bool:
		return scanBool(src, spec, a.ptr.(*bool))
	case kind.String:
		return scanString(src, spec, l, a.ptr.(*string))
	case kind.Rune:
		return scanRune(src, spec, a.ptr.(*int32))

	case kind.Int:
		return scanSigned(src, spec, l, 64, a.ptr.(*int))
	case kind.Int8:
		return scanSigned(src, spec, l, 8, a.ptr.(*int8))
	case kind.Int16:
		return scanSigned(src, spec, l, 16, a.ptr.(*int16))
	case kind.Int64:
		return scanSigned(src, spec, l, 64, a.ptr.(*int64))

	case kind.Uint:
		return scanUnsigned(src, spec, l, 64, a.ptr.(*uint))
	case kind.Uint8:
		return scanUnsigned(src, spec, l, 8, a.ptr.(*uint8))
	case kind.Uint16:
		return scanUnsigned(src, spec, l, 16, a.ptr.(*uint16))
	case kind.Uint32:
		return scanUnsigned(src, spec, l, 32, a.ptr.(*uint32))
	case kind.Uint64:
		return scanUnsigned(src, spec, l, 64, a.ptr.(*uint64))

	case kind.Float32:
		return scanFloat(src, spec, l, 32, a.ptr.(*float32))
	case kind.Float64:
		return scanFloat(src, spec, l, 64, a.ptr.(*float64))

	default:
		return errs.New(errs.InvalidFormatString, "no scanner registered for kind %s", a.k)
	}
}

// resolveLocale picks the locale a given field scans under: the engine's
// configured locale only for a numeric kind whose field carries the "L"
// flag (spec §4.4, and spec §9's resolution of the "{:L}" open question);
// the locale-independent "C" rules in every other case. The specifier
// parser accepts "L" on non-numeric kinds too (it is simply ignored there), so
// this is the one place that enforces "L" is a no-op for them.
func resolveLocale(configured locale.Locale, k kind.Kind, spec format.Spec) locale.Locale {
	if k.IsNumeric() && spec.Locale {
		return configured
	}
	return locale.C()
}
