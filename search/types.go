package search

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for checker construction and configuration.
var (
	// ErrMissingHook is returned by New when a required hook is nil.
	ErrMissingHook = errors.New("search: required hook missing")

	// ErrOptionViolation is returned by Check when an invalid or missing Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultCheckEvery is the default deadline-check cadence, in dequeues.
const DefaultCheckEvery = 256

// Reason explains why an unsolved search stopped.
type Reason string

const (
	// ReasonNone accompanies a solved result.
	ReasonNone Reason = ""
	// ReasonStateLimit: MaxStates distinct states were expanded without a solution.
	ReasonStateLimit Reason = "state-limit"
	// ReasonTimeLimit: MaxDuration elapsed without a solution.
	ReasonTimeLimit Reason = "time-limit"
	// ReasonExhausted: the frontier emptied before any budget was hit.
	ReasonExhausted Reason = "exhausted"
)

// Strategy selects the frontier discipline.
type Strategy uint8

const (
	// BreadthFirst expands states in FIFO order.
	BreadthFirst Strategy = iota
	// DepthFirst expands the most recently discovered state first.
	DepthFirst
)

// Hooks is the caller's state-space model. S is the state type, M the move type.
type Hooks[S, M any] struct {
	// IsSolved reports whether s is a terminal win. Required.
	IsSolved func(s S) bool

	// Normalize maps s to its deduplication key. States sharing a key must be
	// interchangeable for search purposes. Required.
	Normalize func(s S) string

	// ListMoves returns the legal moves from s; none means s is not expanded further. Required.
	ListMoves func(s S) []M

	// ApplyMove returns the successor of s under m without mutating s. Required.
	ApplyMove func(s S, m M) S

	// Prepare, if set, runs once per dequeued state before goal test and
	// expansion. It may return a rewritten state (e.g. after forced moves);
	// returning ok == false marks the state a dead end.
	Prepare func(s S) (S, bool)

	// ShouldPrune, if set, runs after Prepare; true skips goal test and expansion.
	ShouldPrune func(s S) bool
}

// Result is the outcome of Check.
type Result[M any] struct {
	Solved bool
	Reason Reason

	// StatesExplored counts distinct states that were goal-tested unsolved and expanded.
	StatesExplored int

	// PrunedStates counts states dropped by Prepare or ShouldPrune.
	PrunedStates int

	// Path holds the moves from the initial state to the solved one when
	// WithRecordPath was used. Moves absorbed by Prepare are not listed.
	Path []M

	Elapsed time.Duration
}

// Option configures a single Check call.
type Option func(*Options)

// Options holds budgets and tuning for Check.
type Options struct {
	// MaxStates is the hard ceiling on expanded states. Required, > 0.
	MaxStates int

	// MaxDuration is the wall-clock ceiling. Required, > 0.
	MaxDuration time.Duration

	// Strategy is the frontier discipline; BreadthFirst by default.
	Strategy Strategy

	// CheckEvery is the deadline-check cadence in dequeues.
	CheckEvery int

	// RecordPath keeps parent links so Result.Path can be rebuilt.
	RecordPath bool

	// Now supplies the clock; time.Now by default.
	Now func() time.Time

	// OnExpand is called for every expanded state with its key and the
	// number of moves listed.
	OnExpand func(key string, moves int)

	err error
}

// DefaultOptions returns unset budgets (Check rejects them until provided),
// BreadthFirst, CheckEvery = DefaultCheckEvery, the real clock and a no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Strategy:   BreadthFirst,
		CheckEvery: DefaultCheckEvery,
		Now:        time.Now,
		OnExpand:   func(string, int) {},
	}
}

// WithMaxStates sets the state budget (n > 0).
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxStates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithMaxDuration sets the wall-clock budget (d > 0).
func WithMaxDuration(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDuration must be positive (%v)", ErrOptionViolation, d)
			return
		}
		o.MaxDuration = d
	}
}

// WithStrategy selects BreadthFirst or DepthFirst.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != BreadthFirst && s != DepthFirst {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithCheckEvery sets how many dequeues pass between deadline checks (n > 0).
func WithCheckEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: CheckEvery must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.CheckEvery = n
	}
}

// WithRecordPath makes a solved Result carry the winning move sequence.
func WithRecordPath() Option {
	return func(o *Options) { o.RecordPath = true }
}

// WithClock replaces time.Now, mainly for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// WithOnExpand registers a hook called for each expanded state.
func WithOnExpand(fn func(key string, moves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
