package rubric

import (
	"errors"
	"fmt"
)

// Category identifies one of the six scoring dimensions.
type Category int

const (
	Buzzword Category = iota
	Ego
	Extraction
	Manipulation
	Vagueness
	Tone

	numCategories = 6
)

// Categories lists every category in aggregation order.
var Categories = []Category{Buzzword, Ego, Extraction, Manipulation, Vagueness, Tone}

// String returns the wire key used in JSON payloads.
func (c Category) String() string {
	switch c {
	case Buzzword:
		return "buzzword_density"
	case Ego:
		return "ego_inflation"
	case Extraction:
		return "resource_extractiveness"
	case Manipulation:
		return "manipulative_tactics"
	case Vagueness:
		return "vagueness_substance"
	case Tone:
		return "tone_darkness"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Mode is the declared context of the submitted text.
type Mode string

const (
	ModeStartup  Mode = "startup"
	ModeDating   Mode = "dating"
	ModePolitics Mode = "politics"
	ModeEveryday Mode = "everyday"
)

// Modes lists every accepted mode.
var Modes = []Mode{ModeStartup, ModeDating, ModePolitics, ModeEveryday}

// ErrUnknownMode is returned by ParseMode for values outside Modes.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMode validates raw. An empty value selects ModeEveryday; anything else
// must match a mode name exactly.
func ParseMode(raw string) (Mode, error) {
	if raw == "" {
		return ModeEveryday, nil
	}
	for _, m := range Modes {
		if string(m) == raw {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
}

// Bucket is the label derived from the overall score.
type Bucket string

const (
	BucketPureSoul       Bucket = "Pure Soul"
	BucketSlightFang     Bucket = "Slight Fang"
	BucketOpportunistic  Bucket = "Opportunistic"
	BucketThirsty        Bucket = "Thirsty"
	BucketAncientVampire Bucket = "Ancient Vampire"
)

// Buckets lists labels from lowest to highest.
var Buckets = []Bucket{BucketPureSoul, BucketSlightFang, BucketOpportunistic, BucketThirsty, BucketAncientVampire}

// CategoryScore is the output of a single category scorer.
type CategoryScore struct {
	Score    float64  `json:"score"`
	Evidence []string `json:"evidence"`
}

// Scores holds the six adjusted sub-scores, each within [0,100].
type Scores struct {
	BuzzwordDensity        float64 `json:"buzzword_density"`
	EgoInflation           float64 `json:"ego_inflation"`
	ResourceExtractiveness float64 `json:"resource_extractiveness"`
	ManipulativeTactics    float64 `json:"manipulative_tactics"`
	VaguenessSubstance     float64 `json:"vagueness_substance"`
	ToneDarkness           float64 `json:"tone_darkness"`
}

// Get returns the score for c.
func (s Scores) Get(c Category) float64 {
	switch c {
	case Buzzword:
		return s.BuzzwordDensity
	case Ego:
		return s.EgoInflation
	case Extraction:
		return s.ResourceExtractiveness
	case Manipulation:
		return s.ManipulativeTactics
	case Vagueness:
		return s.VaguenessSubstance
	case Tone:
		return s.ToneDarkness
	}
	return 0
}

func (s *Scores) set(c Category, v float64) {
	switch c {
	case Buzzword:
		s.BuzzwordDensity = v
	case Ego:
		s.EgoInflation = v
	case Extraction:
		s.ResourceExtractiveness = v
	case Manipulation:
		s.ManipulativeTactics = v
	case Vagueness:
		s.VaguenessSubstance = v
	case Tone:
		s.ToneDarkness = v
	}
}

// Map returns the scores keyed by their wire names.
func (s Scores) Map() map[string]float64 {
	out := make(map[string]float64, numCategories)
	for _, c := range Categories {
		out[c.String()] = s.Get(c)
	}
	return out
}

// Result is the full analysis of one text.
type Result struct {
	Mode         Mode     `json:"mode"`
	OverallScore int      `json:"overall_vampire_score"`
	Bucket       Bucket   `json:"bucket"`
	Scores       Scores   `json:"scores"`
	Evidence     []string `json:"evidence"`
}
