package rubric

// perCategory holds one value per Category, indexed by the Category itself.
type perCategory [numCategories]float64

// BucketThreshold maps an inclusive upper bound to a label.
type BucketThreshold struct {
	Upper  int
	Bucket Bucket
}

// Tuning carries every constant of the rubric. Values are treated as
// read-only once an Engine is built from them.
type Tuning struct {
	// DensityFactor converts lexicon density (hits per 100 tokens) to a score.
	DensityFactor perCategory
	// SpecificityPenalty scales the (numbers + capitalized words) / tokens
	// discount subtracted from the vagueness score.
	SpecificityPenalty float64
	// IntensityBoost is added to the tone score per "!" and per ALL-CAPS word.
	IntensityBoost float64
	// EvidencePerCategory bounds evidence snippets returned by one scorer.
	EvidencePerCategory int
	// EvidenceTotal bounds the deduplicated evidence of a Result.
	EvidenceTotal int
	// SnippetMin and SnippetMax are exclusive bounds on accepted sentence length.
	SnippetMin int
	SnippetMax int
	// SnippetTruncate is the length a snippet is cut to before the ellipsis.
	SnippetTruncate int

	ModeMultipliers map[Mode]map[Category]float64
	Weights         perCategory
	Thresholds      []BucketThreshold
	// TopBucket applies above the last threshold.
	TopBucket Bucket
}

// DefaultTuning returns the production rubric constants.
func DefaultTuning() Tuning {
	return Tuning{
		DensityFactor: perCategory{
			Buzzword:     10,
			Ego:          15,
			Extraction:   12,
			Manipulation: 15,
			Vagueness:    10,
			Tone:         8,
		},
		SpecificityPenalty:  20,
		IntensityBoost:      2,
		EvidencePerCategory: 2,
		EvidenceTotal:       6,
		SnippetMin:          20,
		SnippetMax:          200,
		SnippetTruncate:     150,
		ModeMultipliers: map[Mode]map[Category]float64{
			ModeStartup:  {Buzzword: 1.2, Extraction: 1.3},
			ModeDating:   {Ego: 1.3, Manipulation: 1.2},
			ModePolitics: {Vagueness: 1.4, Manipulation: 1.3},
			ModeEveryday: {},
		},
		Weights: perCategory{
			Buzzword:     20,
			Ego:          15,
			Extraction:   20,
			Manipulation: 20,
			Vagueness:    15,
			Tone:         10,
		},
		Thresholds: []BucketThreshold{
			{Upper: 20, Bucket: BucketPureSoul},
			{Upper: 40, Bucket: BucketSlightFang},
			{Upper: 60, Bucket: BucketOpportunistic},
			{Upper: 80, Bucket: BucketThirsty},
		},
		TopBucket: BucketAncientVampire,
	}
}
