package analytics

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/models"
)

const (
	statsWindow      = 30 * 24 * time.Hour
	recentEventCount = 20
	dailyStatDays    = 7
)

type ModeCount struct {
	Mode  string `json:"mode"`
	Count int    `json:"count"`
}

type BucketCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

type DailyStat struct {
	Date     string `json:"date"`
	Analyses int    `json:"analyses"`
	Views    int    `json:"views"`
}

// Stats summarizes the last 30 days of events.
type Stats struct {
	PageViews         int                     `json:"pageViews"`
	TextsAnalyzed     int                     `json:"textsAnalyzed"`
	TotalAnalyses     []ModeCount             `json:"totalAnalyses"`
	AverageScore      int                     `json:"averageScore"`
	ScoreDistribution []BucketCount           `json:"scoreDistribution"`
	DownloadCount     int                     `json:"downloadCount"`
	ErrorCount        int                     `json:"errorCount"`
	ErrorRate         float64                 `json:"errorRate"`
	RecentEvents      []models.AnalyticsEvent `json:"recentEvents"`
	PopularModes      []ModeCount             `json:"popularModes"`
	DailyStats        []DailyStat             `json:"dailyStats"`
	LastUpdated       time.Time               `json:"lastUpdated"`
}

// ComputeStats derives Stats from the events of the window (oldest first)
// and the most recent events (newest first). Days are UTC.
func ComputeStats(window, recent []models.AnalyticsEvent, now time.Time) Stats {
	cutoff := now.Add(-statsWindow)

	var (
		pageViews, analyzed, downloads, errs int
		scoreSum                             float64
		scored                               int
		buckets                              = map[string]int{}
		modes                                = map[string]int{}
	)

	for _, ev := range window {
		if !ev.Timestamp.After(cutoff) {
			continue
		}
		switch ev.Event {
		case models.EventPageView:
			pageViews++
		case models.EventShareAction:
			downloads++
		case models.EventAnalysisError:
			errs++
		case models.EventTextAnalyzed:
			analyzed++
			if score, ok := number(ev.Properties["score"]); ok {
				scoreSum += score
				scored++
			}
			if bucket, ok := ev.Properties["bucket"].(string); ok && bucket != "" {
				buckets[bucket]++
			}
			if mode, ok := ev.Properties["mode"].(string); ok && mode != "" {
				modes[mode]++
			}
		}
	}

	stats := Stats{
		PageViews:     pageViews,
		TextsAnalyzed: analyzed,
		DownloadCount: downloads,
		ErrorCount:    errs,
		LastUpdated:   now,
	}
	if scored > 0 {
		stats.AverageScore = int(math.Round(scoreSum / float64(scored)))
	}
	if analyzed > 0 {
		rate := float64(errs) / float64(analyzed+errs) * 100
		stats.ErrorRate = math.Round(rate*10) / 10
	}

	for _, kv := range sortedCounts(buckets) {
		stats.ScoreDistribution = append(stats.ScoreDistribution, BucketCount{Bucket: kv.key, Count: kv.count})
	}
	for _, kv := range sortedCounts(modes) {
		stats.PopularModes = append(stats.PopularModes, ModeCount{Mode: kv.key, Count: kv.count})
	}
	if stats.ScoreDistribution == nil {
		stats.ScoreDistribution = []BucketCount{}
	}
	if stats.PopularModes == nil {
		stats.PopularModes = []ModeCount{}
	}
	stats.TotalAnalyses = stats.PopularModes

	stats.DailyStats = dailyStats(window, now)

	if len(recent) > recentEventCount {
		recent = recent[:recentEventCount]
	}
	stats.RecentEvents = append([]models.AnalyticsEvent{}, recent...)
	return stats
}

func dailyStats(events []models.AnalyticsEvent, now time.Time) []DailyStat {
	today := now.UTC().Truncate(24 * time.Hour)
	first := today.AddDate(0, 0, -(dailyStatDays - 1))

	days := make([]DailyStat, dailyStatDays)
	for i := range days {
		days[i].Date = first.AddDate(0, 0, i).Format("2006-01-02")
	}
	for _, ev := range events {
		ts := ev.Timestamp.UTC()
		if ts.Before(first) {
			continue
		}
		idx := int(ts.Sub(first) / (24 * time.Hour))
		if idx >= dailyStatDays {
			continue
		}
		switch ev.Event {
		case models.EventTextAnalyzed:
			days[idx].Analyses++
		case models.EventPageView:
			days[idx].Views++
		}
	}
	return days
}

type keyCount struct {
	key   string
	count int
}

// sortedCounts orders by count descending, then key ascending.
func sortedCounts(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{key: k, count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
