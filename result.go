package scn

import "github.com/rchilly/scn/source"

// Result is what every scan call returns alongside its error: the
// unconsumed suffix of the source, available whether or not the scan
// fully succeeded (spec §5's partial-match contract).
type Result struct {
	suffix source.Suffix
}

// Rest returns the text of the unconsumed suffix.
func (r Result) Rest() string {
	if r.suffix == nil {
		return ""
	}
	return r.suffix.String()
}

// Exhausted reports whether the source was fully consumed.
func (r Result) Exhausted() bool {
	return r.suffix == nil || r.suffix.IsEmpty()
}

// Suffix returns the raw source.Suffix, letting a streaming caller reach
// the resumable reader a *source.Stream hands back (ScanAndSync's reason
// for existing).
func (r Result) Suffix() source.Suffix {
	return r.suffix
}
