package detector

import (
	"fmt"
	"strings"
)

// Variant identifiers used by the presets.
const (
	VariantKlondike = "klondike"
	VariantFreeCell = "freecell"
)

// NewKlondikePreset flags a Klondike deal when either
//   - three same-suit inversions are covered by face-down cards, or
//   - two aces each lie under four or more face-down cards.
func NewKlondikePreset() *Detector {
	return &Detector{
		variantID: VariantKlondike,
		opts: Options{
			TableauKey: DefaultTableauKey,
			Matchers: []Matcher{
				FoundationOrderInversion(InversionConfig{MinPairs: 3, RequireHiddenCover: true}),
				EntombedAces(EntombedConfig{MinAces: 2, MinCardsAbove: 4, RequireHiddenAbove: true}),
			},
			MinMatchedRules: 1,
		},
	}
}

// NewFreeCellPreset flags a FreeCell deal only on pervasive inversion: free
// cells resolve a few inverted pairs, so seven are required. FreeCell deals are
// fully face-up, so no hidden-card precondition applies.
func NewFreeCellPreset() *Detector {
	return &Detector{
		variantID: VariantFreeCell,
		opts: Options{
			TableauKey: DefaultTableauKey,
			Matchers: []Matcher{
				FoundationOrderInversion(InversionConfig{MinPairs: 7}),
			},
			MinMatchedRules: 1,
		},
	}
}

// Preset resolves a variant name (case-insensitive) to its preset Detector.
func Preset(variant string) (*Detector, error) {
	switch strings.ToLower(variant) {
	case VariantKlondike:
		return NewKlondikePreset(), nil
	case VariantFreeCell:
		return NewFreeCellPreset(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
}
