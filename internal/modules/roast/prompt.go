package roast

import (
	"fmt"
	"strings"

	"github.com/CyberTud/dracula-wtf/internal/rubric"
)

const (
	promptEvidence = 2
	issueThreshold = 50
)

func systemPrompt(bucket rubric.Bucket) string {
	return fmt.Sprintf(`You are Count Dracula, providing witty, satirical roasts about text that shows vampire-like behavior.
Keep responses under 90 words. Be funny but safe (PG-13), avoid protected classes, punch up only.
Reference the vampire bucket (%s) and incorporate 1-2 evidence snippets naturally.
Voice: aristocratic, dramatic, slightly self-deprecating humor.`, bucket)
}

func userPrompt(res rubric.Result) string {
	evidence := res.Evidence
	if len(evidence) > promptEvidence {
		evidence = evidence[:promptEvidence]
	}

	var issues []string
	for _, c := range rubric.Categories {
		if res.Scores.Get(c) > issueThreshold {
			issues = append(issues, c.String())
		}
	}
	mainIssues := "none"
	if len(issues) > 0 {
		mainIssues = strings.Join(issues, ", ")
	}

	return fmt.Sprintf(`Analyze this %s text with vampire score %d:
Evidence: %s
Main issues: %s
Give a short Dracula roast.`, res.Mode, res.OverallScore, strings.Join(evidence, " | "), mainIssues)
}
