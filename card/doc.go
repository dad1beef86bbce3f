// Package card defines the card facts consumed by the solvability analysers:
// suits, colors, ranks, face-down flags and the column-based Position snapshot.
//
// What
//
//   - Suit and Color: four symbolic suits, color derived from suit.
//   - Rank: plain integer; Ace is 1 (AceHigh == 14 is accepted for variants
//     that rank the ace above the king).
//   - Card: suit, rank and a Hidden (face-down) flag.
//   - Column: ordered cards, bottom to top.
//   - Position: named pile groups ("tableau", "cells", "stock", ...), each an
//     ordered list of columns.
//
// JSON
//
//	A Position decodes from an object whose keys are pile-group names:
//
//		{"tableau": [[{"suit":"hearts","val":"A","hidden":true}, {"suit":"s","val":7}]]}
//
//	"val" (alias "rank") accepts an integer or a face string (A, 2..10, J, Q, K).
//	Suits accept full names, single letters and the four suit symbols.
//
// Errors
//
//   - ErrBadSuit  if a suit string is not recognised.
//   - ErrBadRank  if a rank is outside 1..14 or not a known face.
package card
