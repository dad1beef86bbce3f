package detector_test

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/solvability/card"
)

func up(s card.Suit, r int) card.Card   { return card.New(s, r) }
func down(s card.Suit, r int) card.Card { return card.New(s, r).FaceDown() }

// deepCoverInversion has three same-suit, consecutive-rank pairs, each upper
// card face-down, across three columns.
func deepCoverInversion() card.Position {
	return card.NewPosition("tableau",
		card.Column{up(card.Hearts, 4), down(card.Hearts, 5)},
		card.Column{up(card.Spades, 9), down(card.Spades, 10)},
		card.Column{up(card.Clubs, 2), down(card.Clubs, 3)},
	)
}

// acesAtBase has four short face-up columns with an ace at each base.
func acesAtBase() card.Position {
	return card.NewPosition("tableau",
		card.Column{up(card.Spades, 1), up(card.Hearts, 7)},
		card.Column{up(card.Hearts, 1), up(card.Clubs, 12)},
		card.Column{up(card.Diamonds, 1)},
		card.Column{up(card.Clubs, 1), up(card.Diamonds, 9), up(card.Spades, 5)},
	)
}

// entombed buries two aces under four face-down cards each.
func entombed() card.Position {
	return card.NewPosition("tableau",
		card.Column{up(card.Hearts, 1), down(card.Clubs, 9), down(card.Clubs, 8), down(card.Diamonds, 4), down(card.Spades, 13)},
		card.Column{up(card.Spades, 1), down(card.Hearts, 9), down(card.Hearts, 8), down(card.Hearts, 4), down(card.Diamonds, 13)},
		card.Column{up(card.Diamonds, 2)},
	)
}

// both triggers the inversion and the entombed-aces rules.
func both() card.Position {
	cols := append([]card.Column{}, deepCoverInversion().Group("tableau")...)
	cols = append(cols, entombed().Group("tableau")...)

	return card.NewPosition("tableau", cols...)
}

// pile is the state of a foundation-only game: cards leave the tableau only
// by going to their foundation, one rank at a time. It is a restricted rule
// set used to check that flagged layouts cannot be cleared.
type pile struct {
	cols       []card.Column
	foundation [4]int
}

func newPile(p card.Position) pile {
	src := p.Group("tableau")
	cols := make([]card.Column, len(src))
	for i, c := range src {
		cols[i] = append(card.Column(nil), c...)
	}

	return pile{cols: cols}
}

func (p pile) solved() bool {
	for _, c := range p.cols {
		if len(c) > 0 {
			return false
		}
	}

	return true
}

func (p pile) key() string {
	var b strings.Builder
	for _, c := range p.cols {
		b.WriteString(strconv.Itoa(len(c)))
		b.WriteByte('|')
	}
	for _, f := range p.foundation {
		b.WriteString(strconv.Itoa(f))
		b.WriteByte(',')
	}

	return b.String()
}

func (p pile) moves() []int {
	var out []int
	for i, c := range p.cols {
		top, ok := c.Top()
		if ok && top.Rank == p.foundation[top.Suit]+1 {
			out = append(out, i)
		}
	}

	return out
}

func (p pile) apply(col int) pile {
	next := pile{cols: make([]card.Column, len(p.cols)), foundation: p.foundation}
	copy(next.cols, p.cols)
	c := p.cols[col]
	top := c[len(c)-1]
	next.cols[col] = c[:len(c)-1]
	next.foundation[top.Suit] = top.Rank

	return next
}
