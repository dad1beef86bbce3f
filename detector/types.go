package detector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/solvability/card"
	"github.com/katalvlaran/solvability/depgraph"
)

// Sentinel errors for detector construction and evaluation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("detector: invalid option supplied")

	// ErrNilMatcher is returned when a nil Matcher is configured.
	ErrNilMatcher = errors.New("detector: matcher is nil")

	// ErrUnknownVariant is returned by Preset for an unknown variant name.
	ErrUnknownVariant = errors.New("detector: unknown variant")
)

// DefaultTableauKey is the pile group evaluated when WithTableauKey is not used.
const DefaultTableauKey = "tableau"

// UnnamedRule replaces a missing RuleID on a matched result.
const UnnamedRule = "unnamed-rule"

// Ref is a flat reference to a graph node ("c2r4") or edge ("c2r5 covers c2r4").
type Ref string

// NodeRef references node i of g.
func NodeRef(g *depgraph.Graph, i int) Ref { return Ref(g.Node(i).ID) }

// EdgeRef references edge e of g.
func EdgeRef(g *depgraph.Graph, e depgraph.Edge) Ref {
	return Ref(g.Node(e.From).ID + " " + e.Kind.String() + " " + g.Node(e.To).ID)
}

// Match is the outcome of one matcher.
// Score is a severity weight (default 1); it never feeds a global probability.
type Match struct {
	RuleID   string
	Matched  bool
	Reason   string
	Evidence []Ref
	Score    int
}

// Input is what every matcher receives. Matchers must treat it as read-only.
type Input struct {
	Graph    *depgraph.Graph
	Position card.Position
	// Params carries per-call, matcher-specific options (see WithParams).
	Params map[string]string
}

// Matcher inspects an Input and reports whether its motif is present.
// A non-matching result only needs Matched == false.
type Matcher func(in Input) (Match, error)

// Evaluation is the result of Detector.Evaluate.
type Evaluation struct {
	VariantID        string
	LikelyInsolvable bool
	MatchedRules     []Match
	Graph            depgraph.Summary
}

// Option configures a Detector at construction.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Detector configuration.
type Options struct {
	// TableauKey names the Position pile group holding the columns.
	TableauKey string

	// Matchers are run, in order, on every Evaluate.
	Matchers []Matcher

	// MinMatchedRules is the number of matched rules required to declare
	// a deal likely unsolvable. Must be >= 1.
	MinMatchedRules int

	err error
}

// DefaultOptions returns TableauKey "tableau", no matchers, MinMatchedRules 1.
func DefaultOptions() Options {
	return Options{
		TableauKey:      DefaultTableauKey,
		MinMatchedRules: 1,
	}
}

// WithTableauKey selects which pile group of the Position holds the tableau.
func WithTableauKey(key string) Option {
	return func(o *Options) {
		if key == "" {
			o.err = fmt.Errorf("%w: tableau key is empty", ErrOptionViolation)
			return
		}
		o.TableauKey = key
	}
}

// WithMatchers appends matchers to the configuration.
func WithMatchers(ms ...Matcher) Option {
	return func(o *Options) {
		for i, m := range ms {
			if m == nil {
				o.err = fmt.Errorf("%w: position %d", ErrNilMatcher, len(o.Matchers)+i)
				return
			}
		}
		o.Matchers = append(o.Matchers, ms...)
	}
}

// WithMinMatchedRules sets the match-count threshold (n >= 1).
func WithMinMatchedRules(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MinMatchedRules must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MinMatchedRules = n
	}
}

// EvalOption tunes a single Evaluate call.
type EvalOption func(*evalOptions)

type evalOptions struct {
	params   map[string]string
	onMatch  func(Match)
	parallel bool
}

// WithParams passes opaque key/value options to every matcher via Input.Params.
func WithParams(params map[string]string) EvalOption {
	return func(o *evalOptions) { o.params = params }
}

// WithOnMatch registers a hook invoked once per matched rule, in matcher order,
// after all matchers have run.
func WithOnMatch(fn func(Match)) EvalOption {
	return func(o *evalOptions) {
		if fn != nil {
			o.onMatch = fn
		}
	}
}

// WithParallel runs the matchers in separate goroutines. Results are still
// reported in matcher order.
func WithParallel() EvalOption {
	return func(o *evalOptions) { o.parallel = true }
}
