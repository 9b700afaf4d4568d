package rubric

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	numberRun       = regexp.MustCompile(`\d+`)
	capitalizedWord = regexp.MustCompile(`[A-Z][a-z]+`)
	allCapsWord     = regexp.MustCompile(`\b[A-Z]{2,}\b`)
)

// tokenCount returns the number of whitespace-separated tokens, never less than 1.
func tokenCount(text string) int {
	n := len(strings.Fields(text))
	if n == 0 {
		return 1
	}
	return n
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// density returns lexicon hits per 100 tokens.
func density(lower string, tokens int, lex *Lexicon) float64 {
	return float64(lex.Occurrences(lower)) / float64(tokens) * 100
}

// scoreDensity is the plain density scorer shared by buzzword, ego,
// extraction and manipulation.
func (e *Engine) scoreDensity(c Category, text string) CategoryScore {
	lex := e.lexicons[c]
	d := density(strings.ToLower(text), tokenCount(text), lex)
	return CategoryScore{
		Score:    clamp(d * e.tuning.DensityFactor[c]),
		Evidence: e.extractEvidence(text, lex),
	}
}

// scoreVagueness discounts vague-word density by how many concrete numbers
// and proper nouns the text carries. The raw value may go negative.
func (e *Engine) scoreVagueness(text string) CategoryScore {
	lex := e.lexicons[Vagueness]
	tokens := tokenCount(text)
	d := density(strings.ToLower(text), tokens, lex)

	specifics := len(numberRun.FindAllStringIndex(text, -1)) + len(capitalizedWord.FindAllStringIndex(text, -1))
	specificity := float64(specifics) / float64(tokens)

	raw := d*e.tuning.DensityFactor[Vagueness] - specificity*e.tuning.SpecificityPenalty
	return CategoryScore{
		Score:    clamp(raw),
		Evidence: e.extractEvidence(text, lex),
	}
}

// scoreTone adds an intensity boost for exclamations and shouting on top of
// dark-word density.
func (e *Engine) scoreTone(text string) CategoryScore {
	lex := e.lexicons[Tone]
	d := density(strings.ToLower(text), tokenCount(text), lex)

	intensity := strings.Count(text, "!") + len(allCapsWord.FindAllStringIndex(text, -1))
	raw := d*e.tuning.DensityFactor[Tone] + float64(intensity)*e.tuning.IntensityBoost
	return CategoryScore{
		Score:    clamp(raw),
		Evidence: e.extractEvidence(text, lex),
	}
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// extractEvidence returns up to EvidencePerCategory sentences that contain a
// lexicon phrase, in order of appearance.
func (e *Engine) extractEvidence(text string, lex *Lexicon) []string {
	limit := e.tuning.EvidencePerCategory
	evidence := make([]string, 0, limit)
	if limit <= 0 {
		return evidence
	}

	for _, sentence := range strings.FieldsFunc(text, isSentenceTerminator) {
		if len(evidence) >= limit {
			break
		}
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		if _, ok := lex.firstIn(strings.ToLower(sentence)); !ok {
			continue
		}
		if snippet, ok := e.snippet(trimmed); ok {
			evidence = append(evidence, snippet)
		}
	}
	return evidence
}

// snippet applies the length window and truncation to a trimmed sentence.
func (e *Engine) snippet(trimmed string) (string, bool) {
	n := utf8.RuneCountInString(trimmed)
	if n <= e.tuning.SnippetMin || n >= e.tuning.SnippetMax {
		return "", false
	}
	if n > e.tuning.SnippetTruncate {
		return string([]rune(trimmed)[:e.tuning.SnippetTruncate]) + "...", true
	}
	return trimmed, true
}
