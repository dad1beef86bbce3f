// Package detector flags solitaire deals that are very likely unsolvable,
// without searching, by matching forbidden motifs in the layout's dependency graph.
//
// What
//
//   - A Detector is configured once with a variant label, the pile-group key
//     holding the tableau, a list of Matchers and a MinMatchedRules threshold.
//   - Evaluate rebuilds a depgraph.Graph from the snapshot, runs every matcher
//     against it and reports LikelyInsolvable when at least MinMatchedRules
//     rules matched. The threshold is a plain count, not a weighted sum: one
//     conclusive motif is enough.
//   - Matchers are plain functions. Two families are provided:
//   - FoundationOrderInversion: same-suit covers whose upper card is exactly
//     one rank above the card it buries.
//   - EntombedAces: aces buried under too many cards.
//   - All and Any combine matchers into a single rule.
//   - NewKlondikePreset and NewFreeCellPreset bundle the tuned parameters.
//
// Guarantee
//
//	The result is directional. LikelyInsolvable == false means "not proven
//	unsolvable by these heuristics", never "solvable". There is deliberately no
//	field that claims solvability.
//
// Purity
//
//	Matchers must be pure functions of their Input; they share no mutable
//	state, so their order is irrelevant and WithParallel may run them
//	concurrently. A Detector is immutable after New and safe for concurrent use.
//
// Errors
//
//   - ErrOptionViolation  for invalid construction options (e.g. MinMatchedRules < 1).
//   - ErrNilMatcher       if a nil Matcher is configured.
//   - ErrUnknownVariant   from Preset for an unrecognised variant name.
//   - A matcher returning an error aborts Evaluate; the error is wrapped with
//     the matcher's position and returned without a partial Evaluation.
//
// Usage
//
//	d := detector.NewKlondikePreset()
//	ev, err := d.Evaluate(pos)
//	if err != nil {
//		// a matcher failed
//	}
//	if ev.LikelyInsolvable {
//		// redeal
//	}
package detector
