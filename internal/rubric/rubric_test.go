package rubric

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainBuzzText = "we plan to leverage the old barn for storage during the long wet winter months ahead of the spring planting"

func TestAnalyze_InnocentText(t *testing.T) {
	res := Analyze("I love spending time with my family and friends. The weather is nice today.", ModeEveryday)

	assert.Equal(t, BucketPureSoul, res.Bucket)
	assert.Less(t, res.OverallScore, 30)
	assert.Empty(t, res.Evidence)
}

func TestAnalyze_BuzzwordHeavyStartupPitch(t *testing.T) {
	text := "As a visionary thought leader and serial entrepreneur, I leverage synergy to disrupt paradigms. " +
		"My revolutionary blockchain AI-powered web3 solution will 10x your growth hack potential. " +
		"This game-changing unicorn opportunity is a paradigm shift."

	res := Analyze(text, ModeStartup)

	assert.Greater(t, res.OverallScore, 50)
	assert.Equal(t, 100.0, res.Scores.BuzzwordDensity)
	assert.Contains(t, res.Evidence, "As a visionary thought leader and serial entrepreneur, I leverage synergy to disrupt paradigms")
}

func TestAnalyze_ManipulativeTactics(t *testing.T) {
	text := "Don't miss out on this urgent opportunity! You must act now or you'll regret it forever. " +
		"Only an idiot would pass this up. Time is running out!"

	res := Analyze(text, ModeEveryday)

	assert.Greater(t, res.Scores.ManipulativeTactics, 40.0)
	assert.Equal(t, []string{
		"Don't miss out on this urgent opportunity",
		"You must act now or you'll regret it forever",
	}, res.Evidence)
}

func TestAnalyze_ResourceExtraction(t *testing.T) {
	text := "DM me now! Book a call immediately! Buy my course! Apply for my exclusive program! " +
		"Limited spots available! Invest in my startup! Sign up for premium access!"

	res := Analyze(text, ModeEveryday)
	assert.Greater(t, res.Scores.ResourceExtractiveness, 40.0)
}

func TestAnalyze_RepeatedTextStaysBounded(t *testing.T) {
	text := strings.Repeat("synergy disrupt revolutionary unicorn blockchain ", 100)

	for _, mode := range Modes {
		res := Analyze(text, mode)
		assert.LessOrEqual(t, res.OverallScore, 100, mode)
		for _, c := range Categories {
			assert.LessOrEqual(t, res.Scores.Get(c), 100.0, "%s/%s", mode, c)
		}
	}
}

func TestAnalyze_ModeSensitivity(t *testing.T) {
	everyday := Analyze(plainBuzzText, ModeEveryday)
	startup := Analyze(plainBuzzText, ModeStartup)

	assert.InDelta(t, 50.0, everyday.Scores.BuzzwordDensity, 1e-9)
	assert.InDelta(t, 60.0, startup.Scores.BuzzwordDensity, 1e-9)

	saturated := "innovative strategic synergy leverage paradigm"
	assert.GreaterOrEqual(t,
		Analyze(saturated, ModeStartup).Scores.BuzzwordDensity,
		Analyze(saturated, ModeEveryday).Scores.BuzzwordDensity)
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := "As a thought leader, I need you to book a call immediately. This revolutionary opportunity will transform your life."
	first := Analyze(text, ModeDating)
	second := Analyze(text, ModeDating)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("analysis is not idempotent (-first +second):\n%s", diff)
	}
}

func TestAnalyze_Monotonic(t *testing.T) {
	text := plainBuzzText
	prev := Analyze(text, ModeEveryday).Scores.BuzzwordDensity
	for i := 0; i < 8; i++ {
		text += " synergy"
		cur := Analyze(text, ModeEveryday).Scores.BuzzwordDensity
		assert.GreaterOrEqual(t, cur, prev, "iteration %d", i)
		prev = cur
	}
}

func TestAnalyze_ExtractsEvidence(t *testing.T) {
	text := "As a thought leader, I need you to book a call immediately. This revolutionary opportunity will transform your life."
	res := Analyze(text, ModeEveryday)

	require.NotEmpty(t, res.Evidence)
	found := false
	for _, ev := range res.Evidence {
		if strings.Contains(ev, "thought leader") || strings.Contains(ev, "book a call") {
			found = true
		}
	}
	assert.True(t, found, "evidence %v", res.Evidence)
}

func TestAnalyze_EmptyText(t *testing.T) {
	res := Analyze("", ModeEveryday)
	assert.Equal(t, 0, res.OverallScore)
	assert.Equal(t, BucketPureSoul, res.Bucket)
	assert.NotNil(t, res.Evidence)
}

func TestAnalyze_RandomizedProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	vocab := append([]string{"the", "cat", "sat", "on", "mat", "Paris", "42", "WOW", "!", ".", "?", "quietly"},
		Buzzwords.Phrases()...)
	vocab = append(vocab, ManipulationPhrases.Phrases()...)
	vocab = append(vocab, DarkToneWords.Phrases()...)

	for i := 0; i < 200; i++ {
		n := rng.Intn(120)
		words := make([]string, n)
		for j := range words {
			words[j] = vocab[rng.Intn(len(vocab))]
		}
		text := strings.Join(words, " ")
		mode := Modes[rng.Intn(len(Modes))]

		res := Analyze(text, mode)
		require.GreaterOrEqual(t, res.OverallScore, 0)
		require.LessOrEqual(t, res.OverallScore, 100)
		for _, c := range Categories {
			require.GreaterOrEqual(t, res.Scores.Get(c), 0.0)
			require.LessOrEqual(t, res.Scores.Get(c), 100.0)
		}
		require.Equal(t, Default().BucketFor(res.OverallScore), res.Bucket)
		require.LessOrEqual(t, len(res.Evidence), 6)

		seen := map[string]bool{}
		for _, ev := range res.Evidence {
			require.False(t, seen[ev], "duplicate evidence %q", ev)
			seen[ev] = true
		}
	}
}

func TestBucketFor(t *testing.T) {
	e := Default()
	cases := []struct {
		score int
		want  Bucket
	}{
		{0, BucketPureSoul},
		{20, BucketPureSoul},
		{21, BucketSlightFang},
		{40, BucketSlightFang},
		{41, BucketOpportunistic},
		{60, BucketOpportunistic},
		{61, BucketThirsty},
		{80, BucketThirsty},
		{81, BucketAncientVampire},
		{100, BucketAncientVampire},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, e.BucketFor(tc.score), "score %d", tc.score)
	}
}

func TestAdjust(t *testing.T) {
	e := Default()
	raw := Scores{
		BuzzwordDensity:        50,
		EgoInflation:           50,
		ResourceExtractiveness: 90,
		ManipulativeTactics:    50,
		VaguenessSubstance:     50,
		ToneDarkness:           50,
	}

	startup := e.Adjust(raw, ModeStartup)
	assert.InDelta(t, 60, startup.BuzzwordDensity, 1e-9)
	assert.Equal(t, 100.0, startup.ResourceExtractiveness)
	assert.Equal(t, 50.0, startup.EgoInflation)

	politics := e.Adjust(raw, ModePolitics)
	assert.InDelta(t, 70, politics.VaguenessSubstance, 1e-9)
	assert.InDelta(t, 65, politics.ManipulativeTactics, 1e-9)

	assert.Equal(t, raw, e.Adjust(raw, ModeEveryday))
	assert.Equal(t, raw, e.Adjust(raw, Mode("unknown")))
}

func TestOverall(t *testing.T) {
	e := Default()
	all := Scores{100, 100, 100, 100, 100, 100}
	assert.Equal(t, 100, e.Overall(all))
	assert.Equal(t, 0, e.Overall(Scores{}))

	// 50*20/100 = 10, 33*15/100 = 4.95 -> 14.95 rounds to 15
	assert.Equal(t, 15, e.Overall(Scores{BuzzwordDensity: 50, EgoInflation: 33}))
}

func TestScoreTone_IntensityBoost(t *testing.T) {
	cs := Default().Score(Tone, "STOP THIS NOW!!")
	// two "!" plus three all-caps words, two points each
	assert.InDelta(t, 10.0, cs.Score, 1e-9)
}

func TestScoreVagueness(t *testing.T) {
	e := Default()
	assert.Equal(t, 0.0, e.Score(Vagueness, "Apple sold 42 units in Berlin").Score)
	assert.Equal(t, 100.0, e.Score(Vagueness, "Our robust platform").Score)
}

func TestExtractEvidence_Window(t *testing.T) {
	e := Default()

	long := "the synergy " + strings.Repeat("x", 170)
	ev := e.extractEvidence(long, Buzzwords)
	require.Len(t, ev, 1)
	assert.Equal(t, 153, len([]rune(ev[0])))
	assert.True(t, strings.HasSuffix(ev[0], "..."))

	tooLong := "the synergy " + strings.Repeat("y", 200)
	assert.Empty(t, e.extractEvidence(tooLong, Buzzwords))

	assert.Empty(t, e.extractEvidence("synergy now. ok", Buzzwords))

	many := "First sentence has synergy inside it. Second sentence has synergy inside it. Third sentence has synergy inside it."
	assert.Equal(t, []string{
		"First sentence has synergy inside it",
		"Second sentence has synergy inside it",
	}, e.extractEvidence(many, Buzzwords))
}

func TestMergeEvidence(t *testing.T) {
	in := []CategoryScore{
		{Evidence: []string{"a", "b"}},
		{Evidence: []string{"b", "c"}},
		{Evidence: []string{"d", "e"}},
		{Evidence: []string{"f", "g"}},
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, mergeEvidence(in, 6))
}

func TestLexiconOccurrences(t *testing.T) {
	lex := NewLexicon("test", "Thought Leader", "leader", "  ")
	assert.Equal(t, 2, lex.Len())
	assert.Equal(t, 3, lex.Occurrences("a thought leader and a leader"))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeEveryday, m)

	m, err = ParseMode("startup")
	require.NoError(t, err)
	assert.Equal(t, ModeStartup, m)

	for _, raw := range []string{"gothic", "STARTUP", "Dating", " politics", "everyday "} {
		_, err = ParseMode(raw)
		assert.ErrorIs(t, err, ErrUnknownMode, raw)
	}
}

func TestEngineWithLexicon(t *testing.T) {
	e := Default().WithLexicon(Buzzword, NewLexicon("custom", "barn"))
	assert.InDelta(t, 50.0, e.Score(Buzzword, plainBuzzText).Score, 1e-9)
	// the default engine is untouched
	assert.InDelta(t, 50.0, Default().Score(Buzzword, plainBuzzText).Score, 1e-9)
	assert.Equal(t, 0.0, e.Score(Buzzword, "synergy synergy").Score)
}
