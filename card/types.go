package card

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for card decoding.
var (
	// ErrBadSuit is returned when a suit value cannot be recognised.
	ErrBadSuit = errors.New("card: unknown suit")

	// ErrBadRank is returned when a rank is out of range or not a known face.
	ErrBadRank = errors.New("card: invalid rank")
)

// Suit is one of the four French suits.
type Suit uint8

// Suits in bridge order.
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in declaration order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// Color is the derived color of a suit.
type Color uint8

const (
	Black Color = iota
	Red
)

// Rank bounds. Ace is low by default.
const (
	Ace     = 1
	Jack    = 11
	Queen   = 12
	King    = 13
	AceHigh = 14
)

// Color returns Red for diamonds and hearts, Black otherwise.
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}

	return Black
}

// String returns the lower-case suit name.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	}

	return "suit(" + strconv.Itoa(int(s)) + ")"
}

// Symbol returns the single-rune suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}

	return "?"
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}

	return "black"
}

// ParseSuit accepts "hearts", "Hearts", "h", "H" or "♥" (and likewise for the other suits).
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "clubs", "Clubs", "club", "c", "C", "♣":
		return Clubs, nil
	case "diamonds", "Diamonds", "diamond", "d", "D", "♦":
		return Diamonds, nil
	case "hearts", "Hearts", "heart", "h", "H", "♥":
		return Hearts, nil
	case "spades", "Spades", "spade", "s", "S", "♠":
		return Spades, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadSuit, s)
}

// ParseRank accepts "A", "2".."10", "J", "Q", "K" or a decimal number in 1..14.
func ParseRank(s string) (int, error) {
	switch s {
	case "A", "a":
		return Ace, nil
	case "J", "j":
		return Jack, nil
	case "Q", "q":
		return Queen, nil
	case "K", "k":
		return King, nil
	}
	r, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadRank, s)
	}

	return checkRank(r)
}

func checkRank(r int) (int, error) {
	if r < Ace || r > AceHigh {
		return 0, fmt.Errorf("%w: %d", ErrBadRank, r)
	}

	return r, nil
}

// RankLabel renders a rank the way it is printed on a card face.
func RankLabel(r int) string {
	switch r {
	case Ace, AceHigh:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}

	return strconv.Itoa(r)
}
