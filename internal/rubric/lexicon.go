package rubric

import "strings"

// Lexicon is an ordered, immutable list of lower-cased phrases.
type Lexicon struct {
	name    string
	phrases []string
}

// NewLexicon lower-cases and copies phrases. Blank entries are dropped.
func NewLexicon(name string, phrases ...string) *Lexicon {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return &Lexicon{name: name, phrases: out}
}

// Name returns the lexicon label.
func (l *Lexicon) Name() string { return l.name }

// Len returns the number of phrases.
func (l *Lexicon) Len() int { return len(l.phrases) }

// Phrases returns a copy of the phrase list.
func (l *Lexicon) Phrases() []string {
	out := make([]string, len(l.phrases))
	copy(out, l.phrases)
	return out
}

// Occurrences counts non-overlapping matches of every phrase in lower.
// lower must already be lower-cased. Phrases are matched independently, so
// "thought leader" and "leader" would both count on the same span.
func (l *Lexicon) Occurrences(lower string) int {
	n := 0
	for _, p := range l.phrases {
		n += strings.Count(lower, p)
	}
	return n
}

// firstIn returns the first phrase (lexicon order) contained in lower.
func (l *Lexicon) firstIn(lower string) (string, bool) {
	for _, p := range l.phrases {
		if strings.Contains(lower, p) {
			return p, true
		}
	}
	return "", false
}

var (
	Buzzwords = NewLexicon("buzzwords",
		"synergy", "disrupt", "thought leader", "visionary", "10x", "web3",
		"ai-powered", "unicorn", "paradigm", "stakeholder", "leverage",
		"growth hack", "hustle", "crushing it", "ninja", "rockstar", "guru",
		"game-changer", "revolutionary", "blockchain", "crypto", "nft",
		"metaverse", "ecosystem", "innovate", "scale", "pivot", "agile",
		"bandwidth", "synergize", "ideate", "mindshare", "bleeding edge",
		"move the needle", "circle back", "deep dive", "low-hanging fruit",
	)

	EgoPhrases = NewLexicon("ego",
		"world-class", "elite", "best in class", "award-winning", "top 1%",
		"genius", "serial entrepreneur", "industry leader", "expert",
		"authority", "influencer", "thought leader", "game changer",
		"pioneer", "mastermind", "mogul", "titan", "legend", "icon",
		"revolutionary", "brilliant", "exceptional", "extraordinary",
		"unparalleled", "unprecedented", "groundbreaking", "cutting-edge",
	)

	ExtractiveMarkers = NewLexicon("extraction",
		"raise", "round", "funding", "buy now", "limited time", "dm me",
		"book a call", "apply now", "scale your", "monetize", "leads",
		"pipeline", "i need you to", "invest", "opportunity", "exclusive",
		"vip", "premium", "upgrade", "subscribe", "join my", "sign up",
		"register now", "early bird", "special offer", "discount", "bonus",
		"free trial", "money back", "guarantee", "risk-free", "act now",
		"spots available", "closing soon", "deadline", "hurry", "last chance",
	)

	ManipulationPhrases = NewLexicon("manipulation",
		"don't miss out", "or else", "you must", "only an idiot", "everyone knows",
		"shame", "guilt", "fear", "urgent", "immediately", "now or never",
		"regret", "mistake", "failure", "lose out", "left behind", "too late",
		"running out", "almost gone", "final", "ending soon", "expires",
		"pressure", "obligation", "duty", "responsible", "blame", "fault",
		"disappointed", "let down", "missing out", "fomo", "scarcity",
	)

	VaguenessWords = NewLexicon("vagueness",
		"innovative", "impactful", "transformative", "strategic", "dynamic",
		"robust", "seamless", "holistic", "optimal", "efficient", "effective",
		"comprehensive", "cutting-edge", "next-gen", "state-of-the-art",
		"best-in-class", "world-class", "leading", "premier", "top-tier",
		"revolutionary", "game-changing", "disruptive", "breakthrough",
		"unprecedented", "unmatched", "superior", "exceptional", "outstanding",
	)

	DarkToneWords = NewLexicon("tone",
		"exploit", "manipulate", "control", "dominate", "crush", "destroy",
		"eliminate", "annihilate", "conquer", "subjugate", "overpower",
		"ruthless", "merciless", "cutthroat", "aggressive", "hostile",
		"predatory", "parasitic", "toxic", "venomous", "malicious",
		"devour", "consume", "drain", "suck", "leech", "vampire", "blood",
	)
)

// lexiconFor maps each category to its default lexicon.
func lexiconFor(c Category) *Lexicon {
	switch c {
	case Buzzword:
		return Buzzwords
	case Ego:
		return EgoPhrases
	case Extraction:
		return ExtractiveMarkers
	case Manipulation:
		return ManipulationPhrases
	case Vagueness:
		return VaguenessWords
	case Tone:
		return DarkToneWords
	}
	return nil
}
