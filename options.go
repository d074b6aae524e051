package scn

import "github.com/rchilly/scn/locale"

// Option configures an Engine. Persisted or environment-driven
// configuration is out of scope; every knob the engine exposes is set
// explicitly by the caller at construction time, the way the teacher's
// own Scanner took all of its state through constructor arguments.
type Option func(*Engine)

// WithLocale sets the locale numeric fields carrying the "L" flag scan
// under. The default Engine uses locale.C().
func WithLocale(loc locale.Locale) Option {
	return func(e *Engine) { e.loc = loc }
}
