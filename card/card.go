package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Card is a single card fact as seen in a layout.
type Card struct {
	Suit   Suit
	Rank   int
	Hidden bool // face-down
}

// New returns a face-up card.
func New(s Suit, rank int) Card { return Card{Suit: s, Rank: rank} }

// FaceDown returns a copy of c with Hidden set.
func (c Card) FaceDown() Card {
	c.Hidden = true
	return c
}

// Color derives the card color from its suit.
func (c Card) Color() Color { return c.Suit.Color() }

// String renders "A♥", "10♠"; face-down cards are wrapped in brackets.
func (c Card) String() string {
	s := RankLabel(c.Rank) + c.Suit.Symbol()
	if c.Hidden {
		return "[" + s + "]"
	}

	return s
}

// Column is an ordered pile of cards, index 0 at the bottom.
type Column []Card

// Top returns the uppermost card and false for an empty column.
func (c Column) Top() (Card, bool) {
	if len(c) == 0 {
		return Card{}, false
	}

	return c[len(c)-1], true
}

// Position is a layout snapshot: named pile groups, each a list of columns.
// The zero value is an empty position.
type Position struct {
	Piles map[string][]Column
}

// NewPosition returns a Position holding the given tableau columns under key.
func NewPosition(key string, columns ...Column) Position {
	return Position{Piles: map[string][]Column{key: columns}}
}

// Group returns the columns stored under key; nil when absent.
func (p Position) Group(key string) []Column {
	if p.Piles == nil {
		return nil
	}

	return p.Piles[key]
}

// With returns a copy of p whose group key is replaced by columns.
// The receiver is left untouched.
func (p Position) With(key string, columns ...Column) Position {
	out := Position{Piles: make(map[string][]Column, len(p.Piles)+1)}
	for k, v := range p.Piles {
		out.Piles[k] = v
	}
	out.Piles[key] = columns

	return out
}

// CardCount returns the number of cards across every group.
func (p Position) CardCount() int {
	n := 0
	for _, cols := range p.Piles {
		for _, col := range cols {
			n += len(col)
		}
	}

	return n
}

// Keys returns the group names in sorted order.
func (p Position) Keys() []string {
	keys := make([]string, 0, len(p.Piles))
	for k := range p.Piles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// cardJSON is the wire shape of a Card. Val and Rank are aliases.
type cardJSON struct {
	Suit   string          `json:"suit"`
	Val    json.RawMessage `json:"val,omitempty"`
	Rank   json.RawMessage `json:"rank,omitempty"`
	Hidden bool            `json:"hidden,omitempty"`
}

// MarshalJSON writes {"suit":"hearts","val":1,"hidden":true}.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		Suit:   c.Suit.String(),
		Val:    json.RawMessage(strconv.Itoa(c.Rank)),
		Hidden: c.Hidden,
	})
}

// UnmarshalJSON accepts numeric or face-string ranks under "val" or "rank".
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("card: decode: %w", err)
	}
	s, err := ParseSuit(raw.Suit)
	if err != nil {
		return err
	}
	src := raw.Val
	if isAbsent(src) {
		src = raw.Rank
	}
	r, err := decodeRank(src)
	if err != nil {
		return err
	}
	*c = Card{Suit: s, Rank: r, Hidden: raw.Hidden}

	return nil
}

func isAbsent(src json.RawMessage) bool {
	src = bytes.TrimSpace(src)

	return len(src) == 0 || bytes.Equal(src, []byte("null"))
}

func decodeRank(src json.RawMessage) (int, error) {
	src = bytes.TrimSpace(src)
	if isAbsent(src) {
		return 0, fmt.Errorf("%w: missing", ErrBadRank)
	}
	if src[0] == '"' {
		var s string
		if err := json.Unmarshal(src, &s); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadRank, err)
		}
		return ParseRank(s)
	}
	var n int
	if err := json.Unmarshal(src, &n); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrBadRank, src)
	}

	return checkRank(n)
}

// MarshalJSON writes the pile groups as a plain object.
func (p Position) MarshalJSON() ([]byte, error) {
	if p.Piles == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(p.Piles)
}

// UnmarshalJSON reads an object of pile groups. A JSON null column decodes as
// empty. Members that are not arrays of columns (scores, flat piles, metadata)
// are ignored; a malformed card inside a column group is still an error.
func (p *Position) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	piles := make(map[string][]Column, len(members))
	for k, v := range members {
		if !isColumnGroup(v) {
			continue
		}
		var cols []Column
		if err := json.Unmarshal(v, &cols); err != nil {
			return fmt.Errorf("card: group %q: %w", k, err)
		}
		piles[k] = cols
	}
	p.Piles = piles

	return nil
}

// isColumnGroup reports whether v is an array whose elements are all arrays or null.
func isColumnGroup(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || v[0] != '[' {
		return false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(v, &elems); err != nil {
		return false
	}
	for _, e := range elems {
		e = bytes.TrimSpace(e)
		if len(e) == 0 || (e[0] != '[' && !bytes.Equal(e, []byte("null"))) {
			return false
		}
	}

	return true
}
