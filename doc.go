// Package solvability answers one question about a dealt solitaire layout:
// can it still be won?
//
// Two independent analysers do the work, and a variant controller composes them:
//
//	detector/: cheap static veto. Builds the layout's dependency graph and
//	            matches forbidden motifs (foundation-order inversions,
//	            entombed aces). Flags "likely unsolvable"; never claims "solvable".
//	search/:   bounded, variant-agnostic state-space search over caller hooks
//	            (IsSolved, Normalize, ListMoves, ApplyMove, Prepare, ShouldPrune)
//	            with mandatory state and wall-clock budgets.
//
// Supporting packages:
//
//	card/:     suits, ranks, face-down flags, Position snapshots and their JSON form
//	depgraph/: the arena dependency graph (covers + foundation-prerequisite edges)
//	deal/:     deterministic seeded Klondike and FreeCell layouts
//
// Typical flow:
//
//	ev, _ := detector.NewKlondikePreset().Evaluate(pos)
//	if ev.LikelyInsolvable {
//		// redeal
//	}
//	res, _ := checker.Check(state, search.WithMaxStates(200_000), search.WithMaxDuration(2*time.Second))
//	switch {
//	case res.Solved:                          // winnable
//	case res.Reason == search.ReasonExhausted: // proven lost under the model
//	default:                                  // unknown within budget
//	}
//
// The detector never calls the checker and vice versa.
//
//	go install github.com/katalvlaran/solvability/cmd/solvecheck@latest
package solvability
