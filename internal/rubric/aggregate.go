package rubric

import "math"

// Adjust applies the mode multipliers to raw category scores and re-clamps.
// Categories the mode does not list keep their value.
func (e *Engine) Adjust(raw Scores, mode Mode) Scores {
	multipliers := e.tuning.ModeMultipliers[mode]
	adjusted := raw
	for _, c := range Categories {
		m, ok := multipliers[c]
		if !ok {
			continue
		}
		adjusted.set(c, clamp(raw.Get(c)*m))
	}
	return adjusted
}

// Overall combines adjusted scores with the category weights.
func (e *Engine) Overall(s Scores) int {
	var sum, total float64
	for _, c := range Categories {
		sum += s.Get(c) * e.tuning.Weights[c]
		total += e.tuning.Weights[c]
	}
	if total == 0 {
		return 0
	}
	// Divides by the weight sum, which is 100 for the default table.
	return int(clamp(math.Round(sum / total)))
}

// BucketFor maps an overall score to its label.
func (e *Engine) BucketFor(score int) Bucket {
	for _, th := range e.tuning.Thresholds {
		if score <= th.Upper {
			return th.Bucket
		}
	}
	return e.tuning.TopBucket
}

// mergeEvidence concatenates per-category evidence in category order,
// dropping exact duplicates and keeping at most limit entries.
func mergeEvidence(perCategory []CategoryScore, limit int) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, cs := range perCategory {
		for _, ev := range cs.Evidence {
			if len(out) >= limit {
				return out
			}
			if _, dup := seen[ev]; dup {
				continue
			}
			seen[ev] = struct{}{}
			out = append(out, ev)
		}
	}
	return out
}
