// Package deal produces deterministic solitaire layouts from a seed.
//
// Determinism: the same seed yields the same layout on every platform.
// Seed 0 is mapped to a fixed default seed, never to a time-based source.
package deal

import (
	"math/rand"

	"github.com/katalvlaran/solvability/card"
)

// Pile-group keys used in dealt positions.
const (
	Tableau    = "tableau"
	Stock      = "stock"
	Cells      = "cells"
	Foundation = "foundation"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// klondikeColumns and freeCellColumns are the tableau widths.
const (
	klondikeColumns = 7
	freeCellColumns = 8
	freeCellCells   = 4
)

// RNG returns a deterministic *rand.Rand for seed (0 => defaultSeed).
// The result is not goroutine-safe.
func RNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// NewDeck returns an ordered, face-up 52-card deck: clubs, diamonds, hearts,
// spades, each Ace to King.
func NewDeck() []card.Card {
	deck := make([]card.Card, 0, 52)
	for _, s := range card.Suits {
		for r := card.Ace; r <= card.King; r++ {
			deck = append(deck, card.New(s, r))
		}
	}

	return deck
}

// Shuffle performs an in-place Fisher–Yates shuffle of deck using rng.
// A nil rng uses the default seed stream.
func Shuffle(deck []card.Card, rng *rand.Rand) {
	if rng == nil {
		rng = RNG(0)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// Klondike deals seven tableau columns of 1..7 cards, every card face-down
// except the top one. The remaining 24 cards form a single face-down stock column.
func Klondike(seed int64) card.Position {
	deck := NewDeck()
	Shuffle(deck, RNG(seed))

	cols := make([]card.Column, klondikeColumns)
	next := 0
	for c := 0; c < klondikeColumns; c++ {
		col := make(card.Column, c+1)
		for r := 0; r <= c; r++ {
			cd := deck[next]
			next++
			cd.Hidden = r < c
			col[r] = cd
		}
		cols[c] = col
	}
	stock := make(card.Column, 0, len(deck)-next)
	for _, cd := range deck[next:] {
		stock = append(stock, cd.FaceDown())
	}

	return card.Position{Piles: map[string][]card.Column{
		Tableau:    cols,
		Stock:      {stock},
		Foundation: make([]card.Column, len(card.Suits)),
	}}
}

// FreeCell deals the whole deck face-up, row by row, across eight columns
// (7,7,7,7,6,6,6,6). Free cells and foundations start empty.
func FreeCell(seed int64) card.Position {
	deck := NewDeck()
	Shuffle(deck, RNG(seed))

	cols := make([]card.Column, freeCellColumns)
	for i, cd := range deck {
		c := i % freeCellColumns
		cols[c] = append(cols[c], cd)
	}

	return card.Position{Piles: map[string][]card.Column{
		Tableau:    cols,
		Cells:      make([]card.Column, freeCellCells),
		Foundation: make([]card.Column, len(card.Suits)),
	}}
}
