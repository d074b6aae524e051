package scn

import (
	"github.com/rchilly/scn/format"
	"github.com/rchilly/scn/locale"
	"github.com/rchilly/scn/source"
)

// Engine is a configured scanning entry point. The package-level Scan,
// ScanValue, ScanAndSync, and Compile functions are thin wrappers over a
// default Engine, and ScanLocalized builds a fresh Engine for its one
// call; construct one directly with New when a non-default locale should
// apply to every call rather than to one.
type Engine struct {
	loc locale.Locale
}

// New builds an Engine, applying opts over the locale-independent "C"
// default.
func New(opts ...Option) *Engine {
	e := &Engine{loc: locale.C()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scan parses src against format, assigning captured values into
// targetPtrs in order, and returns the unconsumed suffix of src
// regardless of whether an error occurred (spec §5).
func (e *Engine) Scan(src source.Source, fmtStr string, targetPtrs ...interface{}) (Result, error) {
	args, err := argsFrom(targetPtrs)
	if err != nil {
		return Result{suffix: src.Suffix()}, err
	}

	d := &dispatcher{args: args, loc: e.loc}
	suffix, err := format.Run(fmtStr, src, d)
	return Result{suffix: suffix}, err
}

// Compile parses and statically checks format once against the kinds of
// targetPtrs, returning a Scanner that can scan that same format against
// many sources (spec §4.6's static-checking pass, run up front instead
// of once per Scan call).
func (e *Engine) Compile(fmtStr string, targetPtrs ...interface{}) (*Scanner, error) {
	return compile(e, fmtStr, targetPtrs)
}

var defaultEngine = New()

// Scan parses src against format using the default, "C"-locale Engine.
func Scan(src source.Source, fmtStr string, targetPtrs ...interface{}) (Result, error) {
	return defaultEngine.Scan(src, fmtStr, targetPtrs...)
}

// ScanValue scans a single value of type T out of src using the implicit
// single-field format "{}". It is the generic convenience form spec §4.5
// calls out for the common one-argument case; Go's prohibition on
// generic methods is why this is a free function rather than a method on
// Engine.
func ScanValue[T any](src source.Source, out *T) (Result, error) {
	return defaultEngine.Scan(src, "{}", out)
}

// ScanLocalized is Scan under a caller-supplied locale for every field
// carrying the "L" flag.
func ScanLocalized(loc locale.Locale, src source.Source, fmtStr string, targetPtrs ...interface{}) (Result, error) {
	return New(WithLocale(loc)).Scan(src, fmtStr, targetPtrs...)
}

// ScanAndSync scans a streaming source and leaves its underlying reader
// positioned exactly after the consumed prefix, so the caller can keep
// reading the same stream afterward (source.Stream's Suffix already
// returns the same *bufio.Reader; this wrapper just spells out the
// intended use at the call site).
func ScanAndSync(stream *source.Stream, fmtStr string, targetPtrs ...interface{}) (Result, error) {
	return defaultEngine.Scan(stream, fmtStr, targetPtrs...)
}

// Compile is Engine.Compile on the default Engine.
func Compile(fmtStr string, targetPtrs ...interface{}) (*Scanner, error) {
	return defaultEngine.Compile(fmtStr, targetPtrs...)
}
