package layout

// Options configures node sizing, seeding, and the ForceAtlas2 + overlap
// removal passes. The zero value is not directly usable; use
// [DefaultOptions] and Option funcs to override individual fields.
type Options struct {
	SizeMin    float64
	SizeFactor float64
	SizePower  float64

	// IterationsFactor scales every pass's iteration count (spec's "F").
	IterationsFactor float64

	Scaling        float64
	Gravity        float64
	LinLog         bool
	StrongGravity  bool
	BarnesHut      bool
	OverlapRemoval bool

	// RandomSeed seeds the deterministic PRNG used for position seeding and
	// jitter. Zero means "use an arbitrary, non-reproducible seed".
	RandomSeed int64
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{
		SizeMin:          10,
		SizeFactor:       2,
		SizePower:        1,
		IterationsFactor: 1,
		Scaling:          1,
		Gravity:          0.01,
		LinLog:           true,
		StrongGravity:    true,
		BarnesHut:        true,
		OverlapRemoval:   true,
	}
}

// Option mutates an Options value.
type Option func(*Options)

// WithSizing overrides the node-sizing formula's three coefficients.
func WithSizing(sizeMin, sizeFactor, sizePower float64) Option {
	return func(o *Options) {
		o.SizeMin = sizeMin
		o.SizeFactor = sizeFactor
		o.SizePower = sizePower
	}
}

// WithIterationsFactor overrides F, the shared scale applied to every
// pass's iteration count.
func WithIterationsFactor(f float64) Option {
	return func(o *Options) { o.IterationsFactor = f }
}

// WithGravity overrides the gravity strength.
func WithGravity(g float64) Option {
	return func(o *Options) { o.Gravity = g }
}

// WithStrongGravity switches between a constant gravitational pull (true)
// and one tapered by distance from the origin (false).
func WithStrongGravity(enabled bool) Option {
	return func(o *Options) { o.StrongGravity = enabled }
}

// WithLinLog switches the attraction term between linear (false) and
// log1p(distance) (true) scaling.
func WithLinLog(enabled bool) Option {
	return func(o *Options) { o.LinLog = enabled }
}

// WithOverlapRemoval enables or disables the post-FA2 overlap removal
// sweeps.
func WithOverlapRemoval(enabled bool) Option {
	return func(o *Options) { o.OverlapRemoval = enabled }
}

// WithBarnesHut enables or disables Barnes-Hut approximation in passes
// that would otherwise use it.
func WithBarnesHut(enabled bool) Option {
	return func(o *Options) { o.BarnesHut = enabled }
}

// WithRandomSeed fixes the PRNG seed for reproducible layouts.
func WithRandomSeed(seed int64) Option {
	return func(o *Options) { o.RandomSeed = seed }
}

func apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// pass describes one ForceAtlas2 pass's settings (spec §4.3's table).
type pass struct {
	name       string
	iterations func(f float64) int
	slowDown   float64
	barnesHut  bool
	theta      float64
}

func passes(o Options) []pass {
	return []pass{
		{
			name:       "rough",
			iterations: func(f float64) int { return int(100 * f) },
			slowDown:   5,
			barnesHut:  o.BarnesHut,
			theta:      1.2,
		},
		{
			name:       "precision",
			iterations: func(f float64) int { return int(10 * f) },
			slowDown:   20,
			barnesHut:  o.BarnesHut,
			theta:      0.3,
		},
		{
			name:       "slow-refine",
			iterations: func(f float64) int { return int(2 * f) },
			slowDown:   20,
			barnesHut:  false,
			theta:      0.3,
		},
	}
}

// overlapSweep describes one overlap-removal sweep's settings (spec §4.3).
type overlapSweep struct {
	maxIterations func(f float64) int
	marginMM      float64
	speed         float64
}

func overlapSweeps() []overlapSweep {
	return []overlapSweep{
		{maxIterations: func(f float64) int { return int(120 * f) }, marginMM: 0.9, speed: 8},
		{maxIterations: func(f float64) int { return int(80 * f) }, marginMM: 0.6, speed: 4},
		{maxIterations: func(f float64) int { return int(40 * f) }, marginMM: 0.3, speed: 1},
	}
}

const (
	overlapGridSize = 64
	overlapRatio    = 1.05
)
