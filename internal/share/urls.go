package share

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/CyberTud/dracula-wtf/internal/rubric"
)

const (
	// RoastParamLimit bounds the caption length embedded in share URLs.
	RoastParamLimit = 140

	cardPath      = "/api/card.png"
	previewPath   = "/og"
	permalinkPath = "/r/"
)

// Data is the set of shareable links for one result.
type Data struct {
	ResultID   string `json:"resultId"`
	CardPNGURL string `json:"cardPngUrl"`
	OGURL      string `json:"ogUrl"`
	Permalink  string `json:"permalink"`
}

// BuildURLs embeds the result summary into the card, preview and permalink
// URLs relative to baseURL. All values are query-escaped.
func BuildURLs(baseURL, resultID string, res rubric.Result, roast string) Data {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")

	evidence := ""
	if len(res.Evidence) > 0 {
		evidence = res.Evidence[0]
	}

	params := url.Values{}
	params.Set("id", resultID)
	params.Set("score", strconv.Itoa(res.OverallScore))
	params.Set("bucket", string(res.Bucket))
	params.Set("mode", string(res.Mode))
	params.Set("roast", truncateRunes(roast, RoastParamLimit))
	params.Set("evidence", evidence)
	params.Set("token", Token(resultID, res.OverallScore, base))
	query := params.Encode()

	permalink := url.Values{}
	permalink.Set("score", strconv.Itoa(res.OverallScore))
	permalink.Set("bucket", string(res.Bucket))
	permalink.Set("mode", string(res.Mode))
	permalink.Set("roast", truncateRunes(roast, RoastParamLimit))

	return Data{
		ResultID:   resultID,
		CardPNGURL: base + cardPath + "?" + query,
		OGURL:      base + previewPath + "?" + query,
		Permalink:  base + permalinkPath + url.PathEscape(resultID) + "?" + permalink.Encode(),
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
