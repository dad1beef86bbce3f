// Package depgraph builds the static dependency graph of a solitaire layout.
//
// What
//
//   - One Node per card instance in the tableau, addressed by a synthesized
//     id "c<column>r<row>" and stored in a flat slice (arena). Edges refer to
//     nodes by slice index, never by pointer.
//   - Two edge kinds:
//   - Covers: From lies directly on top of To in the same column, so From
//     must move before To is reachable.
//   - FoundationPrerequisite: From (rank r) cannot reach its foundation until
//     To (same suit, rank r-1) has; To may sit anywhere in the layout.
//
// Why
//
//	The graph is what the detector's matchers inspect. It is rebuilt from the
//	snapshot on every call and never mutated afterwards, so a Graph has no
//	identity beyond the evaluation that produced it.
//
// Complexity (n = total cards)
//
//   - Build: O(n) time and memory. Pass 1 creates nodes plus the suit:rank and
//     column:row indices; pass 2 derives edges.
//   - With k decks in play, each card gets up to k prerequisite edges.
//
// Usage
//
//	g := depgraph.Build(pos.Group("tableau"))
//	for _, e := range g.EdgesOfKind(depgraph.Covers) {
//		upper, lower := g.Node(e.From), g.Node(e.To)
//		...
//	}
package depgraph
