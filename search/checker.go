package search

import (
	"fmt"
	"strings"
	"time"
)

// Checker runs bounded searches over one state-space model.
// It is immutable after New and safe for concurrent Check calls, provided the
// hooks themselves are.
type Checker[S, M any] struct {
	hooks Hooks[S, M]
}

// New validates the hooks and returns a Checker.
// Returns ErrMissingHook naming every absent required hook.
func New[S, M any](h Hooks[S, M]) (*Checker[S, M], error) {
	var missing []string
	if h.IsSolved == nil {
		missing = append(missing, "IsSolved")
	}
	if h.Normalize == nil {
		missing = append(missing, "Normalize")
	}
	if h.ListMoves == nil {
		missing = append(missing, "ListMoves")
	}
	if h.ApplyMove == nil {
		missing = append(missing, "ApplyMove")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingHook, strings.Join(missing, ", "))
	}

	return &Checker[S, M]{hooks: h}, nil
}

// trail links a discovered state to the move that produced it.
type trail[M any] struct {
	parent *trail[M]
	move   M
}

// node is a frontier entry.
type node[S, M any] struct {
	state S
	key   string
	trail *trail[M] // nil for the initial state or when paths are not recorded
}

// walker encapsulates the mutable state of one Check call.
type walker[S, M any] struct {
	hooks    Hooks[S, M]
	opts     Options
	frontier *frontier[node[S, M]]
	visited  map[string]struct{}
	res      Result[M]

	start    time.Time
	deadline time.Time
	steps    int
}

// Check searches from initial until a solved state is found, a budget is
// exhausted, or no unvisited state remains. Both WithMaxStates and
// WithMaxDuration are required. Budget exhaustion is reported through
// Result.Reason, never as an error.
//
// Complexity: O(V·b) hook calls for V expanded states of branching factor b,
// plus O(V) memory for the visited set. V is capped by MaxStates. With a fixed
// clock and deterministic hooks, repeated calls return identical results.
func (c *Checker[S, M]) Check(initial S, opts ...Option) (Result[M], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[M]{}, o.err
	}
	if o.MaxStates == 0 {
		return Result[M]{}, fmt.Errorf("%w: MaxStates budget is required", ErrOptionViolation)
	}
	if o.MaxDuration == 0 {
		return Result[M]{}, fmt.Errorf("%w: MaxDuration budget is required", ErrOptionViolation)
	}

	w := &walker[S, M]{
		hooks:    c.hooks,
		opts:     o,
		frontier: newFrontier[node[S, M]](o.Strategy),
		visited:  make(map[string]struct{}),
	}
	w.start = o.Now()
	w.deadline = w.start.Add(o.MaxDuration)

	key := w.hooks.Normalize(initial)
	w.visited[key] = struct{}{}
	w.frontier.push(node[S, M]{state: initial, key: key})

	return w.loop(), nil
}

// loop drains the frontier until success, a budget, or exhaustion.
// Moves are pushed in ListMoves order; the clock is read once every
// CheckEvery dequeues, so a deadline overshoots by at most that many expansions.
func (w *walker[S, M]) loop() Result[M] {
	for w.frontier.len() > 0 {
		if w.deadlineHit() {
			return w.finish(ReasonTimeLimit)
		}
		if w.res.StatesExplored >= w.opts.MaxStates {
			return w.finish(ReasonStateLimit)
		}

		n := w.frontier.pop()
		state, ok := w.prepare(&n)
		if !ok {
			continue
		}
		if w.hooks.IsSolved(state) {
			w.res.Solved = true
			w.res.Path = w.path(n.trail)
			return w.finish(ReasonNone)
		}
		w.expand(state, n)
	}

	return w.finish(ReasonExhausted)
}

// deadlineHit samples the clock once every CheckEvery dequeues, starting
// with the very first one.
func (w *walker[S, M]) deadlineHit() bool {
	step := w.steps
	w.steps++
	if step%w.opts.CheckEvery != 0 {
		return false
	}

	return !w.opts.Now().Before(w.deadline)
}

// prepare runs the optional Prepare and ShouldPrune hooks on n.
// It reports false when the state must be skipped.
func (w *walker[S, M]) prepare(n *node[S, M]) (S, bool) {
	state := n.state
	if w.hooks.Prepare != nil {
		next, ok := w.hooks.Prepare(state)
		if !ok {
			w.res.PrunedStates++
			return state, false
		}
		// a rewrite may land on a state that is already known
		if k := w.hooks.Normalize(next); k != n.key {
			if _, seen := w.visited[k]; seen {
				return state, false
			}
			w.visited[k] = struct{}{}
			n.key = k
		}
		state = next
	}
	if w.hooks.ShouldPrune != nil && w.hooks.ShouldPrune(state) {
		w.res.PrunedStates++
		return state, false
	}

	return state, true
}

// expand counts state as explored and enqueues its unseen successors.
func (w *walker[S, M]) expand(state S, n node[S, M]) {
	w.res.StatesExplored++
	moves := w.hooks.ListMoves(state)
	w.opts.OnExpand(n.key, len(moves))
	for _, m := range moves {
		next := w.hooks.ApplyMove(state, m)
		k := w.hooks.Normalize(next)
		if _, seen := w.visited[k]; seen {
			continue
		}
		w.visited[k] = struct{}{}
		child := node[S, M]{state: next, key: k}
		if w.opts.RecordPath {
			child.trail = &trail[M]{parent: n.trail, move: m}
		}
		w.frontier.push(child)
	}
}

// path rebuilds the move list ending at t, or nil when paths are off.
func (w *walker[S, M]) path(t *trail[M]) []M {
	if !w.opts.RecordPath {
		return nil
	}
	var rev []M
	for ; t != nil; t = t.parent {
		rev = append(rev, t.move)
	}
	out := make([]M, len(rev))
	for i, m := range rev {
		out[len(rev)-1-i] = m
	}

	return out
}

func (w *walker[S, M]) finish(r Reason) Result[M] {
	w.res.Reason = r
	w.res.Elapsed = w.opts.Now().Sub(w.start)

	return w.res
}
