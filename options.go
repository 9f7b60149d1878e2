package rectunion

// VerifyLevel selects how much internal self-checking [Build] and the
// derived-result passes perform. Cheap O(1)-per-step guards (bracket
// parity, empty-set-at-end, link-count match, polygon loop bound) are
// always on regardless of the level; the levels enable progressively
// more expensive whole-structure checks.
type VerifyLevel int

const (
	// VerifyOff enables only the always-on guards. The default.
	VerifyOff VerifyLevel = iota

	// VerifyBasic additionally checks sorted-order invariants of side
	// and series lists and per-row bracket coverage during sweeps.
	VerifyBasic

	// VerifyFull additionally checks, after each derived result, that
	// connected components are pairwise disjoint, that every boundary
	// link lies on the edge of the union, and that the largest
	// rectangle is contained in the union. Quadratic in places; meant
	// for tests and debugging.
	VerifyFull
)

// Option configures a Union during construction.
//
// Example:
//
//	u, err := rectunion.Build(rects, rectunion.WithVerify(rectunion.VerifyFull))
type Option func(*buildOptions)

// buildOptions holds optional configuration for Build.
type buildOptions struct {
	verify      VerifyLevel
	secondSides bool
}

// WithVerify sets the self-check level for the union and all derived
// computations on it.
func WithVerify(level VerifyLevel) Option {
	return func(o *buildOptions) {
		o.verify = level
	}
}

// WithSecondSideConnections makes the connectivity sweep process
// bottom sides of rectangles in addition to top sides. Every edge found
// by a bottom side is also found by a top side, so the result is
// identical; the option exists for cross-checking the sweep and is off
// by default.
func WithSecondSideConnections(enabled bool) Option {
	return func(o *buildOptions) {
		o.secondSides = enabled
	}
}
