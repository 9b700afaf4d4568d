package card

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"github.com/CyberTud/dracula-wtf/internal/share"
)

const (
	quoteRunes     = 40
	defaultQuote   = "something suspiciously vampiric"
	defaultCaption = "No roast available"
)

// Params is what a card shows. All fields come from untrusted query strings.
type Params struct {
	Score    int
	Bucket   rubric.Bucket
	Mode     rubric.Mode
	Roast    string
	Evidence string
}

// ParseParams reads card parameters from a share URL query. Scores are
// clamped to 0-100, unknown buckets are derived from the score and unknown
// modes fall back to everyday.
func ParseParams(q url.Values) Params {
	score, _ := strconv.Atoi(strings.TrimSpace(q.Get("score")))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	bucket := rubric.Bucket(q.Get("bucket"))
	if !validBucket(bucket) {
		bucket = rubric.Default().BucketFor(score)
	}

	mode, err := rubric.ParseMode(q.Get("mode"))
	if err != nil {
		mode = rubric.ModeEveryday
	}

	roast := strings.TrimSpace(q.Get("roast"))
	if roast == "" {
		roast = defaultCaption
	}

	return Params{
		Score:    score,
		Bucket:   bucket,
		Mode:     mode,
		Roast:    truncate(roast, share.RoastParamLimit),
		Evidence: strings.TrimSpace(q.Get("evidence")),
	}
}

// Quote is the top line of the card.
func (p Params) Quote() string {
	ev := p.Evidence
	if ev == "" {
		ev = defaultQuote
	}
	return `ME: "` + truncate(ev, quoteRunes) + `"`
}

func validBucket(b rubric.Bucket) bool {
	for _, known := range rubric.Buckets {
		if b == known {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
