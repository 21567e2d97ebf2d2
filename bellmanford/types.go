// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, tuning constants and functional options for the
//       Bellman-Ford relaxation engine and negative-cycle detector.

package bellmanford

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNilResult indicates that FindCycle was called without a relaxation result.
	ErrNilResult = errors.New("bellmanford: result is nil")

	// ErrSourceOutOfRange indicates that the source vertex is not in [0, V).
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrCycleNotFound is the family error for a detection pass that could not
	// recover a cycle. A plain "no witness" outcome is reported as found == false,
	// never as this error; only its wrapped forms below are returned.
	ErrCycleNotFound = errors.New("bellmanford: negative cycle not found")

	// ErrInconsistentTables indicates that the predecessor walk broke an
	// invariant (a predecessor outside [0, V), or a predecessor edge whose
	// endpoints do not match). It is an internal defect, never user error.
	ErrInconsistentTables = fmt.Errorf("%w: predecessor tables are inconsistent", ErrCycleNotFound)

	// ErrBadMaxIterations indicates a negative iteration cap passed to WithMaxIterations.
	ErrBadMaxIterations = errors.New("bellmanford: MaxIterations must be non-negative")

	// ErrBadSampling indicates a non-positive sample size passed to WithSampling.
	ErrBadSampling = errors.New("bellmanford: sample size must be positive")
)

const (
	// AutoIterations selects the default cap min(V, DefaultIterationCap).
	AutoIterations = -1

	// DefaultIterationCap bounds the automatic iteration count on large graphs.
	DefaultIterationCap = 1000

	// DefaultSampleThreshold is the edge count above which detection samples.
	DefaultSampleThreshold = 10000

	// DefaultSampleSize is how many edges a sampled detection pass examines.
	DefaultSampleSize = 10000

	// defaultSeed is used when Options.Seed == 0.
	defaultSeed int64 = 1

	// noPredecessor marks a vertex that was never relaxed (or the source).
	noPredecessor = -1

	// virtualEdge marks a predecessor link that comes from the virtual source.
	virtualEdge = -2
)

// PassHook is called after every relaxation pass that changed at least one
// distance. pass is 1-based; relaxed counts the updates made in that pass.
// Returning false stops relaxation before the next pass; detection still runs.
type PassHook func(pass, relaxed int) bool

// Options configures a detection run.
type Options struct {
	Source          int      // vertex whose distance starts at 0; ignored with VirtualSource
	MaxIterations   int      // relaxation pass cap K; AutoIterations means min(V, 1000)
	VirtualSource   bool     // relax from an implicit super-source wired to every vertex
	SampleThreshold int      // detection samples when |E| exceeds this; ≤ 0 disables
	SampleSize      int      // edges examined by a sampled detection pass
	Seed            int64    // sampling RNG seed; 0 selects a fixed default stream
	PassHook        PassHook // optional per-pass callback, e.g. a wall-clock budget
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns the documented defaults:
//
//   - Source:          0
//   - MaxIterations:   AutoIterations (min(V, 1000))
//   - VirtualSource:   false
//   - SampleThreshold: 10,000 edges
//   - SampleSize:      10,000 edges
//   - Seed:            0 (fixed default stream)
func DefaultOptions() Options {
	return Options{
		Source:          0,
		MaxIterations:   AutoIterations,
		SampleThreshold: DefaultSampleThreshold,
		SampleSize:      DefaultSampleSize,
	}
}

// Source sets the source vertex. Range is validated against the graph at run
// time (ErrSourceOutOfRange); a negative value panics here.
func Source(v int) Option {
	if v < 0 {
		panic(ErrSourceOutOfRange.Error())
	}
	return func(o *Options) {
		o.Source = v
	}
}

// WithMaxIterations sets the relaxation pass cap K. Zero is valid and means no
// relaxation at all, so nothing can be detected. Negative values panic;
// use AutoIterations through DefaultOptions instead.
func WithMaxIterations(k int) Option {
	if k < 0 {
		panic(ErrBadMaxIterations.Error())
	}
	return func(o *Options) {
		o.MaxIterations = k
	}
}

// WithVirtualSource relaxes from an implicit super-source connected to every
// vertex with weight 0 instead of a single source vertex.
func WithVirtualSource() Option {
	return func(o *Options) {
		o.VirtualSource = true
	}
}

// WithSampling overrides the sampling policy. threshold ≤ 0 disables sampling
// entirely; size must be positive.
func WithSampling(threshold, size int) Option {
	if size <= 0 {
		panic(ErrBadSampling.Error())
	}
	return func(o *Options) {
		o.SampleThreshold = threshold
		o.SampleSize = size
	}
}

// WithoutSampling makes every detection pass scan all edges.
func WithoutSampling() Option {
	return func(o *Options) {
		o.SampleThreshold = 0
	}
}

// WithSeed sets the sampling seed. Equal seeds give identical samples.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithPassHook installs a per-pass callback. Panics on nil.
func WithPassHook(h PassHook) Option {
	if h == nil {
		panic("bellmanford: WithPassHook(nil)")
	}
	return func(o *Options) {
		o.PassHook = h
	}
}

// resolveOptions applies opts over DefaultOptions in order.
func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// iterationCap resolves AutoIterations against the vertex count.
func (o Options) iterationCap(vertexCount int) int {
	if o.MaxIterations != AutoIterations {
		return o.MaxIterations
	}
	if vertexCount < DefaultIterationCap {
		return vertexCount
	}

	return DefaultIterationCap
}
