package detector

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/solvability/card"
	"github.com/katalvlaran/solvability/depgraph"
)

// Detector evaluates layouts against a fixed set of matchers.
type Detector struct {
	variantID string
	opts      Options
}

// New builds a Detector labelled variantID. The label is only reported back
// in Evaluation.VariantID.
func New(variantID string, opts ...Option) (*Detector, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// own the slice so later appends by the caller cannot reach us
	o.Matchers = append([]Matcher(nil), o.Matchers...)

	return &Detector{variantID: variantID, opts: o}, nil
}

// VariantID returns the reporting label.
func (d *Detector) VariantID() string { return d.variantID }

// MinMatchedRules returns the configured threshold.
func (d *Detector) MinMatchedRules() int { return d.opts.MinMatchedRules }

// TableauKey returns the pile group that Evaluate reads.
func (d *Detector) TableauKey() string { return d.opts.TableauKey }

// Evaluate builds the dependency graph of pos[TableauKey] and runs every matcher.
// It never mutates pos and retains no reference to it once it returns.
func (d *Detector) Evaluate(pos card.Position, opts ...EvalOption) (Evaluation, error) {
	var eo evalOptions
	for _, opt := range opts {
		opt(&eo)
	}

	g := depgraph.Build(pos.Group(d.opts.TableauKey))
	in := Input{Graph: g, Position: pos, Params: eo.params}

	var (
		results []Match
		err     error
	)
	if eo.parallel {
		results, err = d.runParallel(in)
	} else {
		results, err = d.runSequential(in)
	}
	if err != nil {
		return Evaluation{}, err
	}

	matched := make([]Match, 0, len(results))
	for _, m := range results {
		if !m.Matched {
			continue
		}
		matched = append(matched, normalize(m))
	}
	if eo.onMatch != nil {
		for _, m := range matched {
			eo.onMatch(m)
		}
	}

	return Evaluation{
		VariantID:        d.variantID,
		LikelyInsolvable: len(matched) >= d.opts.MinMatchedRules,
		MatchedRules:     matched,
		Graph:            g.Summary(),
	}, nil
}

func (d *Detector) runSequential(in Input) ([]Match, error) {
	out := make([]Match, len(d.opts.Matchers))
	for i, m := range d.opts.Matchers {
		res, err := m(in)
		if err != nil {
			return nil, fmt.Errorf("detector: matcher #%d: %w", i, err)
		}
		out[i] = res
	}

	return out, nil
}

func (d *Detector) runParallel(in Input) ([]Match, error) {
	n := len(d.opts.Matchers)
	out := make([]Match, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i, m := range d.opts.Matchers {
		go func(i int, m Matcher) {
			defer wg.Done()
			out[i], errs[i] = m(in)
		}(i, m)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("detector: matcher #%d: %w", i, err)
		}
	}

	return out, nil
}

// normalize fills defaults on a matched result.
func normalize(m Match) Match {
	if m.RuleID == "" {
		m.RuleID = UnnamedRule
	}
	if m.Score == 0 {
		m.Score = 1
	}
	if m.Evidence != nil {
		m.Evidence = append([]Ref(nil), m.Evidence...)
	}

	return m
}
