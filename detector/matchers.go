package detector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/solvability/card"
	"github.com/katalvlaran/solvability/depgraph"
)

// Rule identifiers of the provided matcher families.
const (
	RuleFoundationOrderInversion = "foundation-order-inversion"
	RuleEntombedAces             = "entombed-aces"
)

// InversionConfig tunes FoundationOrderInversion.
type InversionConfig struct {
	// MinPairs is the number of inverted pairs needed for a match (values < 1 mean 1).
	MinPairs int

	// RequireHiddenCover counts a pair only when its upper card is face-down.
	RequireHiddenCover bool
}

// FoundationOrderInversion matches when at least MinPairs covers edges put a
// card directly on top of its same-suit predecessor (upper rank == lower rank + 1).
// The upper card must leave before the lower one is reachable, yet it cannot
// reach the foundation until the lower one has.
func FoundationOrderInversion(cfg InversionConfig) Matcher {
	need := cfg.MinPairs
	if need < 1 {
		need = 1
	}

	return func(in Input) (Match, error) {
		g := in.Graph
		var evidence []Ref
		for _, e := range g.Edges() {
			if e.Kind != depgraph.Covers {
				continue
			}
			up, low := g.Node(e.From), g.Node(e.To)
			if up.Suit != low.Suit || up.Rank != low.Rank+1 {
				continue
			}
			if cfg.RequireHiddenCover && !up.Hidden {
				continue
			}
			evidence = append(evidence, EdgeRef(g, e))
		}
		if len(evidence) < need {
			return Match{RuleID: RuleFoundationOrderInversion}, nil
		}

		return Match{
			RuleID:   RuleFoundationOrderInversion,
			Matched:  true,
			Reason:   fmt.Sprintf("%d same-suit cards sit directly on their foundation predecessor (need %d)", len(evidence), need),
			Evidence: evidence,
			Score:    1,
		}, nil
	}
}

// EntombedConfig tunes EntombedAces.
type EntombedConfig struct {
	// MinAces is the number of buried aces needed for a match (values < 1 mean 1).
	MinAces int

	// MinCardsAbove is how many cards must lie on top of an ace for it to count.
	MinCardsAbove int

	// RequireHiddenAbove counts only face-down cards above the ace.
	RequireHiddenAbove bool
}

// EntombedAces matches when at least MinAces aces each lie under at least
// MinCardsAbove cards in their column.
func EntombedAces(cfg EntombedConfig) Matcher {
	need := cfg.MinAces
	if need < 1 {
		need = 1
	}

	return func(in Input) (Match, error) {
		g := in.Graph
		var evidence []Ref
		buried := 0
		for i := 0; i < g.Len(); i++ {
			if g.Node(i).Rank != card.Ace {
				continue
			}
			above := g.Above(i)
			depth := 0
			for _, j := range above {
				if !cfg.RequireHiddenAbove || g.Node(j).Hidden {
					depth++
				}
			}
			if depth < cfg.MinCardsAbove {
				continue
			}
			buried++
			evidence = append(evidence, NodeRef(g, i))
		}
		if buried < need {
			return Match{RuleID: RuleEntombedAces}, nil
		}

		return Match{
			RuleID:   RuleEntombedAces,
			Matched:  true,
			Reason:   fmt.Sprintf("%d aces lie under at least %d cards (need %d aces)", buried, cfg.MinCardsAbove, need),
			Evidence: evidence,
			Score:    1,
		}, nil
	}
}

// All combines matchers into one rule that matches only when every inner
// matcher matches. Evidence and scores are accumulated in order.
func All(ruleID string, ms ...Matcher) Matcher {
	return func(in Input) (Match, error) {
		out := Match{RuleID: ruleID}
		var reasons []string
		for i, m := range ms {
			res, err := m(in)
			if err != nil {
				return Match{}, fmt.Errorf("%s: inner matcher #%d: %w", ruleID, i, err)
			}
			if !res.Matched {
				return Match{RuleID: ruleID}, nil
			}
			out.Evidence = append(out.Evidence, res.Evidence...)
			out.Score += scoreOf(res)
			reasons = append(reasons, res.Reason)
		}
		out.Matched = len(ms) > 0
		out.Reason = strings.Join(reasons, "; ")

		return out, nil
	}
}

// Any combines matchers into one rule that matches when at least one inner
// matcher matches. Every inner matcher runs; matched evidence is accumulated.
func Any(ruleID string, ms ...Matcher) Matcher {
	return func(in Input) (Match, error) {
		out := Match{RuleID: ruleID}
		var reasons []string
		for i, m := range ms {
			res, err := m(in)
			if err != nil {
				return Match{}, fmt.Errorf("%s: inner matcher #%d: %w", ruleID, i, err)
			}
			if !res.Matched {
				continue
			}
			out.Matched = true
			out.Evidence = append(out.Evidence, res.Evidence...)
			out.Score += scoreOf(res)
			reasons = append(reasons, res.Reason)
		}
		out.Reason = strings.Join(reasons, "; ")

		return out, nil
	}
}

func scoreOf(m Match) int {
	if m.Score == 0 {
		return 1
	}

	return m.Score
}
