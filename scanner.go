package scn

import (
	"github.com/rchilly/scn/errs"
	"github.com/rchilly/scn/format"
	"github.com/rchilly/scn/kind"
	"github.com/rchilly/scn/source"
)

// Scanner holds a format string that has already been statically checked
// against a set of argument kinds, so that a format/kind mismatch or an
// argument the format never references is reported once, by Compile,
// before any source is scanned. The parsed form is not kept: each Scan
// walks the format string again through format.Run. It plays the role the
// teacher's own Scanner/NewScanner pair played for a single verb-based
// pattern, generalized to the replacement-field grammar.
type Scanner struct {
	engine *Engine
	fmtStr string
	kinds  []kind.Kind
}

// compile statically checks fmtStr against targetPtrs' kinds and, if it
// is well-formed and exhaustive, returns a Scanner bound to those kinds.
func compile(e *Engine, fmtStr string, targetPtrs []interface{}) (*Scanner, error) {
	args, err := argsFrom(targetPtrs)
	if err != nil {
		return nil, err
	}

	ks := kindsOf(args)
	if err := format.Check(fmtStr, ks); err != nil {
		return nil, err
	}

	return &Scanner{engine: e, fmtStr: fmtStr, kinds: ks}, nil
}

// Scan scans src against the Scanner's compiled format, assigning into
// targetPtrs. targetPtrs must have the same kinds, in the same order, as
// the ones Compile was given, which Scan verifies first. Compile's
// exhaustiveness check is not repeated; format.Run still parses the
// format string and its specifiers on every call.
func (s *Scanner) Scan(src source.Source, targetPtrs ...interface{}) (Result, error) {
	args, err := argsFrom(targetPtrs)
	if err != nil {
		return Result{suffix: src.Suffix()}, err
	}

	if len(args) != len(s.kinds) {
		return Result{suffix: src.Suffix()}, errs.New(errs.InvalidFormatString,
			"got %d target(s), compiled format expects %d", len(args), len(s.kinds))
	}
	for i, a := range args {
		if a.k != s.kinds[i] {
			return Result{suffix: src.Suffix()}, errs.New(errs.InvalidFormatString,
				"argument %d: got kind %s, compiled format expects %s", i, a.k, s.kinds[i])
		}
	}

	d := &dispatcher{args: args, loc: s.engine.loc}
	suffix, err := format.Run(s.fmtStr, src, d)
	return Result{suffix: suffix}, err
}
