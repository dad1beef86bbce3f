package depgraph

import (
	"strconv"

	"github.com/katalvlaran/solvability/card"
)

// None marks the absence of a node index.
const None = -1

// EdgeKind discriminates dependency edges.
type EdgeKind uint8

const (
	// Covers links an upper card to the card directly beneath it.
	Covers EdgeKind = iota
	// FoundationPrerequisite links a card to its same-suit predecessor.
	FoundationPrerequisite
)

// String returns the kind label used in evidence references.
func (k EdgeKind) String() string {
	switch k {
	case Covers:
		return "covers"
	case FoundationPrerequisite:
		return "foundation-prerequisite"
	}

	return "edge(" + strconv.Itoa(int(k)) + ")"
}

// Node is one card instance of the layout.
type Node struct {
	// ID is synthesized from the position: "c<column>r<row>".
	ID string

	Column int
	Row    int // 0 is the bottom of the column

	Suit   card.Suit
	Rank   int // card.Ace..card.King; AceHigh is folded into Ace
	Hidden bool
	Color  card.Color
}

// Edge is a directed dependency between two nodes, by arena index.
type Edge struct {
	Kind EdgeKind
	From int
	To   int
}

// Summary reports graph size.
type Summary struct {
	NodeCount int
	EdgeCount int
}

// NodeID synthesizes the id of the card at column col, row row.
func NodeID(col, row int) string {
	return "c" + strconv.Itoa(col) + "r" + strconv.Itoa(row)
}

type suitRank struct {
	suit card.Suit
	rank int
}
