// Package rubric implements the lexical vampire-score rubric: six category
// scorers, the mode adjuster and the weighted aggregator. Everything here is
// a pure function of its inputs and safe for concurrent use.
package rubric

import (
	"github.com/sourcegraph/conc/iter"
)

// Engine scores text with a fixed Tuning and lexicon set.
type Engine struct {
	tuning   Tuning
	lexicons [numCategories]*Lexicon
}

// NewEngine builds an engine over the default lexicons.
func NewEngine(t Tuning) *Engine {
	e := &Engine{tuning: t}
	for _, c := range Categories {
		e.lexicons[c] = lexiconFor(c)
	}
	return e
}

// WithLexicon returns a copy of e that scores c against lex.
func (e *Engine) WithLexicon(c Category, lex *Lexicon) *Engine {
	cp := *e
	cp.lexicons[c] = lex
	return &cp
}

// Tuning returns the engine constants.
func (e *Engine) Tuning() Tuning { return e.tuning }

var defaultEngine = NewEngine(DefaultTuning())

// Default returns the process-wide engine built from DefaultTuning.
func Default() *Engine { return defaultEngine }

// Analyze scores text under mode with the default engine.
func Analyze(text string, mode Mode) Result {
	return defaultEngine.Analyze(text, mode)
}

// Score runs a single category scorer.
func (e *Engine) Score(c Category, text string) CategoryScore {
	switch c {
	case Vagueness:
		return e.scoreVagueness(text)
	case Tone:
		return e.scoreTone(text)
	default:
		return e.scoreDensity(c, text)
	}
}

// Analyze runs the six scorers, applies the mode multipliers and aggregates.
// An unknown mode is scored with no multipliers.
func (e *Engine) Analyze(text string, mode Mode) Result {
	byCategory := iter.Map(Categories, func(c *Category) CategoryScore {
		return e.Score(*c, text)
	})

	var raw Scores
	for i, c := range Categories {
		raw.set(c, byCategory[i].Score)
	}
	scores := e.Adjust(raw, mode)
	overall := e.Overall(scores)

	return Result{
		Mode:         mode,
		OverallScore: overall,
		Bucket:       e.BucketFor(overall),
		Scores:       scores,
		Evidence:     mergeEvidence(byCategory, e.tuning.EvidenceTotal),
	}
}
