package format

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/rchilly/scn/errs"
)

// runeRange is an inclusive [Lo, Hi] code-point range, the representation
// spec §9's "Character-class bitmap" note calls for on sources wider than
// 8 bits: "the class must be represented as either a sorted range list or
// a code-point predicate."
type runeRange struct {
	Lo, Hi rune
}

// runeRangeComparator orders ranges by (Lo, Hi). Ordering on Lo alone
// would make two distinct ranges sharing a lower bound compare equal,
// and redblacktree.Put replaces a node's entire key on a zero-comparison
// Add — silently dropping one of the two ranges instead of keeping both
// for the merge pass below.
func runeRangeComparator(a, b interface{}) int {
	ra, rb := a.(runeRange), b.(runeRange)
	if c := utils.Int32Comparator(int32(ra.Lo), int32(rb.Lo)); c != 0 {
		return c
	}
	return utils.Int32Comparator(int32(ra.Hi), int32(rb.Hi))
}

// CharClass is a parsed "[...]" bracket specifier: an inclusion range list
// plus an exclusion flag (spec §3's replacement-field data model).
type CharClass struct {
	Negate bool
	ranges []runeRange
}

// newCharClass merges candidate into the minimal disjoint range list the
// class actually tests membership against. A gods treeset keyed on the
// full (Lo, Hi) pair produces the sorted-by-lower-bound order the merge
// pass below walks; merging adjacent or overlapping ranges (e.g. from
// overlapping POSIX shortcuts like "[:alnum:]" plus an explicit "0-9")
// is then a single linear pass over that order, with no second sort.
func newCharClass(negate bool, candidate []runeRange) *CharClass {
	set := treeset.NewWith(runeRangeComparator)
	for _, r := range candidate {
		set.Add(r)
	}

	sorted := make([]runeRange, 0, set.Size())
	for _, v := range set.Values() {
		sorted = append(sorted, v.(runeRange))
	}

	merged := make([]runeRange, 0, len(sorted))
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Lo <= merged[n-1].Hi+1 {
			if r.Hi > merged[n-1].Hi {
				merged[n-1].Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}

	return &CharClass{Negate: negate, ranges: merged}
}

// Contains reports whether r is a member of the class, honoring Negate.
func (c *CharClass) Contains(r rune) bool {
	return c.rawContains(r) != c.Negate
}

func (c *CharClass) rawContains(r rune) bool {
	i := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].Lo > r })
	if i == 0 {
		return false
	}
	return c.ranges[i-1].Hi >= r
}

var posixClasses = map[string]func(rune) bool{
	"alpha":  func(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') },
	"digit":  func(r rune) bool { return r >= '0' && r <= '9' },
	"alnum":  func(r rune) bool { return isPosixAlpha(r) || isPosixDigit(r) },
	"space":  func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' },
	"xdigit": func(r rune) bool { return isPosixDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') },
	"lower":  func(r rune) bool { return r >= 'a' && r <= 'z' },
	"upper":  func(r rune) bool { return r >= 'A' && r <= 'Z' },
	"punct":  isPosixPunct,
	"cntrl":  func(r rune) bool { return r < 0x20 || r == 0x7F },
	"print":  func(r rune) bool { return r >= 0x20 && r != 0x7F },
	"graph":  func(r rune) bool { return r > 0x20 && r != 0x7F },
}

func isPosixAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isPosixDigit(r rune) bool { return r >= '0' && r <= '9' }
func isPosixPunct(r rune) bool {
	return r >= 0x21 && r <= 0x7E && !isPosixAlpha(r) && !isPosixDigit(r)
}

// posixRanges expands a named POSIX shortcut into the explicit rune
// ranges its predicate covers over the ASCII block (U+0000-U+007F), which is all
// spec §4.4's named shortcuts (alpha, digit, space, alnum, xdigit, lower,
// upper, punct, cntrl, print, graph) are defined over.
func posixRanges(name string) ([]runeRange, bool) {
	pred, ok := posixClasses[name]
	if !ok {
		return nil, false
	}

	var ranges []runeRange
	var open bool
	var start rune
	for r := rune(0); r <= 0x7F; r++ {
		if pred(r) {
			if !open {
				open, start = true, r
			}
			continue
		}
		if open {
			ranges = append(ranges, runeRange{Lo: start, Hi: r - 1})
			open = false
		}
	}
	if open {
		ranges = append(ranges, runeRange{Lo: start, Hi: 0x7F})
	}
	return ranges, true
}

// parseCharClass parses the body of a "[...]" specifier (body does not
// include the enclosing brackets) into a *CharClass.
func parseCharClass(body []rune) (*CharClass, error) {
	i := 0
	negate := false
	if i < len(body) && body[i] == '^' {
		negate = true
		i++
	}

	var ranges []runeRange
	for i < len(body) {
		if body[i] == '[' && i+1 < len(body) && body[i+1] == ':' {
			end := i + 2
			for end < len(body) && body[end] != ':' {
				end++
			}
			if end+1 >= len(body) || body[end] != ':' || body[end+1] != ']' {
				return nil, errs.New(errs.InvalidFormatString, "unterminated POSIX class in character class")
			}
			name := string(body[i+2 : end])
			expanded, ok := posixRanges(name)
			if !ok {
				return nil, errs.New(errs.InvalidFormatString, "unknown POSIX class '[:%s:]'", name)
			}
			ranges = append(ranges, expanded...)
			i = end + 2
			continue
		}

		lo := body[i]
		i++
		if i+1 < len(body) && body[i] == '-' && body[i+1] != ']' {
			hi := body[i+1]
			if hi < lo {
				return nil, errs.New(errs.InvalidFormatString, "descending character range '%c-%c'", lo, hi)
			}
			ranges = append(ranges, runeRange{Lo: lo, Hi: hi})
			i += 2
			continue
		}

		ranges = append(ranges, runeRange{Lo: lo, Hi: lo})
	}

	if len(ranges) == 0 {
		return nil, errs.New(errs.InvalidFormatString, "empty character class")
	}

	return newCharClass(negate, ranges), nil
}
