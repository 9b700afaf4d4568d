package roast

import "github.com/CyberTud/dracula-wtf/internal/rubric"

var fallbackRoasts = map[rubric.Bucket][]string{
	rubric.BucketPureSoul: {
		"Ah, a rare specimen indeed! Your text is as pure as fresh mountain water. I am disappointed... I mean, delighted by your wholesome nature.",
		"Fascinating! Not a drop of vampiric essence. You must be quite boring at parties... I mean, refreshingly authentic!",
		"My fangs retract in your presence. Such purity! Though I wonder if you are perhaps too innocent for this dark world.",
	},
	rubric.BucketSlightFang: {
		"I detect the faintest hint of darkness within you. Like a vampire who only drinks organic, locally-sourced blood.",
		"Ah, a baby vampire! Still learning to embrace the shadows. Your attempts at darkness are almost... cute.",
		"You show promise, young one. With proper mentoring, you could become adequately bloodthirsty.",
	},
	rubric.BucketOpportunistic: {
		"Now we are talking! You feast when convenient, like a vampire with a LinkedIn Premium account.",
		"I see you have mastered the art of selective vampirism. Draining energy only from those who deserve it, yes?",
		"Half mortal, half creature of the night. You would make an excellent middle manager in my castle.",
	},
	rubric.BucketThirsty: {
		"My my, such thirst! You drain others with the efficiency of a corporate restructuring. I am almost impressed.",
		"Your vampiric nature is strong! You could give my cousin Nosferatu lessons in resource extraction.",
		"The blood moon rises for you! Such magnificent manipulation tactics. We should compare notes sometime.",
	},
	rubric.BucketAncientVampire: {
		"At last, a kindred spirit! Your text drips with the essence of a thousand drained souls. We must be related!",
		"Magnificent! You have achieved peak vampirism. Even I, Count Dracula, bow to your bloodsucking prowess.",
		"Your darkness is so profound, it makes my castle look like a beach resort. Truly, you are the apex predator!",
	},
}

// Fallback returns the built-in caption for a bucket, picked by score.
// Unknown buckets use the Pure Soul captions.
func Fallback(bucket rubric.Bucket, score int) string {
	roasts, ok := fallbackRoasts[bucket]
	if !ok {
		roasts = fallbackRoasts[rubric.BucketPureSoul]
	}
	if score < 0 {
		score = -score
	}
	return roasts[score%len(roasts)]
}
