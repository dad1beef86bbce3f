// Package search provides a generic, variant-agnostic bounded state-space
// search that answers "is a solved state reachable from here?" within explicit
// state-count and wall-clock budgets.
//
// What
//
//   - The caller owns the game model and supplies it as Hooks at construction:
//   - IsSolved, Normalize, ListMoves, ApplyMove (required);
//   - Prepare (optional rewrite/closure; returning false prunes the state);
//   - ShouldPrune (optional skip predicate).
//   - Check explores from an initial state, deduplicating by the Normalize key,
//     and stops at the first solved state it meets.
//   - Budgets are mandatory: WithMaxStates caps the number of distinct states
//     expanded, WithMaxDuration caps wall time. Budgets are the only way to
//     stop a search; there is no separate cancellation token.
//
// Per dequeued state
//
//  1. deadline check (every CheckEvery dequeues) and state-limit check;
//  2. Prepare: false => pruned, not explored;
//  3. ShouldPrune: true => pruned, not explored, not goal-tested;
//  4. IsSolved => success;
//  5. otherwise the state counts as explored, every move is applied and each
//     successor whose key is new is pushed onto the frontier.
//
// Outcomes
//
//	Solved == true, or Solved == false with a Reason:
//	  - ReasonStateLimit  the MaxStates budget was reached;
//	  - ReasonTimeLimit   the MaxDuration budget was reached;
//	  - ReasonExhausted   the frontier emptied first: every reachable state
//	                      (under the hooks) was examined and none is solved.
//	Only ReasonExhausted is evidence of unsolvability; the two budget reasons
//	mean "unknown within budget". None of them is an error.
//
// Determinism
//
//	The engine adds no randomness: identical hooks and budgets give identical
//	results. Frontier order is BreadthFirst by default, DepthFirst on request;
//	it affects which solution is found first, not whether one is found.
//
// Complexity (S = states expanded, b = average branching factor)
//
//   - Time:   O(S·b) hook calls.
//   - Memory: O(S·b) for the visited-key set and frontier.
//
// Errors
//
//   - ErrMissingHook      from New when a required hook is nil.
//   - ErrOptionViolation  from Check when a budget is missing or invalid.
//   - Hooks are assumed total; a panicking hook propagates.
package search
