package matching

// Options tunes a match call. Unknown JSON keys are ignored.
type Options struct {
	// Tolerance widens requested numeric bands by this fraction.
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
	// IgnoreLocation skips the city, district and neighborhood gates.
	IgnoreLocation bool `json:"ignore_location" yaml:"ignore_location"`
}

// DefaultOptions returns tolerance 0.10 with location matching on.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Option overrides one field of Options.
type Option func(*Options)

// WithTolerance sets the band expansion ratio.
func WithTolerance(ratio float64) Option {
	return func(o *Options) { o.Tolerance = ratio }
}

// WithIgnoreLocation toggles the location gates.
func WithIgnoreLocation(ignore bool) Option {
	return func(o *Options) { o.IgnoreLocation = ignore }
}

// WithOptions replaces all fields at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

func buildOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	return base
}
