package depgraph

import (
	"github.com/katalvlaran/solvability/card"
)

// Graph is an immutable dependency graph over a tableau snapshot.
// All accessors are read-only; a Graph is safe for concurrent readers.
type Graph struct {
	nodes []Node
	edges []Edge

	// columns[c][r] is the node index at column c, row r.
	columns [][]int
	// above[i] is the node directly on top of node i, or None.
	above []int
	// bySuitRank indexes every instance of a suit:rank pair.
	bySuitRank map[suitRank][]int
}

// Build constructs the dependency graph for the given tableau columns
// (each ordered bottom to top). Nil or empty columns are valid and still
// occupy their column index. A high ace (card.AceHigh) is stored as
// card.Ace: foundations always start at the ace.
//
// Complexity: O(n) time and memory for n cards; with k copies of a card in
// play, each successor gains k prerequisite edges.
func Build(columns []card.Column) *Graph {
	total := 0
	for _, col := range columns {
		total += len(col)
	}
	g := &Graph{
		nodes:      make([]Node, 0, total),
		edges:      make([]Edge, 0, 2*total),
		columns:    make([][]int, len(columns)),
		above:      make([]int, 0, total),
		bySuitRank: make(map[suitRank][]int, total),
	}

	// Pass 1: nodes and indices.
	for c, col := range columns {
		g.columns[c] = make([]int, len(col))
		for r, cd := range col {
			idx := len(g.nodes)
			rank := cd.Rank
			if rank == card.AceHigh {
				rank = card.Ace
			}
			g.nodes = append(g.nodes, Node{
				ID:     NodeID(c, r),
				Column: c,
				Row:    r,
				Suit:   cd.Suit,
				Rank:   rank,
				Hidden: cd.Hidden,
				Color:  cd.Color(),
			})
			g.above = append(g.above, None)
			g.columns[c][r] = idx
			key := suitRank{suit: cd.Suit, rank: rank}
			g.bySuitRank[key] = append(g.bySuitRank[key], idx)
		}
	}

	// Pass 2: edges.
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Row+1 < len(g.columns[n.Column]) {
			up := g.columns[n.Column][n.Row+1]
			g.above[i] = up
			g.edges = append(g.edges, Edge{Kind: Covers, From: up, To: i})
		}
		for _, pre := range g.bySuitRank[suitRank{suit: n.Suit, rank: n.Rank - 1}] {
			g.edges = append(g.edges, Edge{Kind: FoundationPrerequisite, From: i, To: pre})
		}
	}

	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node at arena index i. It panics if i is out of range.
func (g *Graph) Node(i int) Node { return g.nodes[i] }

// Nodes returns a copy of every node in arena order (column-major, bottom first).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of every edge in construction order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgesOfKind returns the edges of kind k in construction order.
func (g *Graph) EdgesOfKind(k EdgeKind) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Kind == k {
			out = append(out, e)
		}
	}

	return out
}

// Columns returns the number of tableau columns, empty ones included.
func (g *Graph) Columns() int { return len(g.columns) }

// Height returns the number of cards in column c, or 0 if c is out of range.
func (g *Graph) Height(c int) int {
	if c < 0 || c >= len(g.columns) {
		return 0
	}

	return len(g.columns[c])
}

// At returns the node index at column c, row r.
func (g *Graph) At(c, r int) (int, bool) {
	if r < 0 || r >= g.Height(c) {
		return None, false
	}

	return g.columns[c][r], true
}

// CoveredBy returns the node lying directly on top of node i, or None.
func (g *Graph) CoveredBy(i int) int { return g.above[i] }

// Above returns every node stacked over node i, bottom to top.
func (g *Graph) Above(i int) []int {
	n := g.nodes[i]
	col := g.columns[n.Column]
	out := make([]int, 0, len(col)-n.Row-1)
	out = append(out, col[n.Row+1:]...)

	return out
}

// Lookup returns every node holding the given suit and rank.
func (g *Graph) Lookup(s card.Suit, rank int) []int {
	src := g.bySuitRank[suitRank{suit: s, rank: rank}]
	out := make([]int, len(src))
	copy(out, src)

	return out
}

// Summary reports the node and edge counts.
func (g *Graph) Summary() Summary {
	return Summary{NodeCount: len(g.nodes), EdgeCount: len(g.edges)}
}
