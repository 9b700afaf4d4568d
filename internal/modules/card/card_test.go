package card

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/CyberTud/dracula-wtf/internal/middleware"
	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseParams(t *testing.T) {
	p := ParseParams(url.Values{
		"score":    {"67"},
		"bucket":   {"Thirsty"},
		"mode":     {"DATING"},
		"roast":    {strings.Repeat("r", 300)},
		"evidence": {"  We leverage synergy.  "},
	})
	assert.Equal(t, 67, p.Score)
	assert.Equal(t, rubric.BucketThirsty, p.Bucket)
	assert.Equal(t, rubric.ModeDating, p.Mode)
	assert.Len(t, p.Roast, 140)
	assert.Equal(t, "We leverage synergy.", p.Evidence)
}

func TestParseParams_Untrusted(t *testing.T) {
	p := ParseParams(url.Values{"score": {"9000"}, "bucket": {"<script>"}, "mode": {"chaos"}})
	assert.Equal(t, 100, p.Score)
	assert.Equal(t, rubric.BucketAncientVampire, p.Bucket)
	assert.Equal(t, rubric.ModeEveryday, p.Mode)
	assert.Equal(t, defaultCaption, p.Roast)

	p = ParseParams(url.Values{"score": {"-5"}})
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, rubric.BucketPureSoul, p.Bucket)

	p = ParseParams(url.Values{"score": {"abc"}})
	assert.Equal(t, 0, p.Score)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `ME: "something suspiciously vampiric"`, Params{}.Quote())
	long := Params{Evidence: strings.Repeat("x", 60)}
	assert.Equal(t, `ME: "`+strings.Repeat("x", 40)+`"`, long.Quote())
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Nil(t, wrap("   ", 10))
	assert.Equal(t, []string{"supercalifragilistic"}, wrap("supercalifragilistic", 5))
}

func TestRender(t *testing.T) {
	img := Render(Params{Score: 50, Bucket: rubric.BucketOpportunistic, Mode: rubric.ModeStartup, Roast: "Now we are talking!"})
	require.Equal(t, Width, img.Bounds().Dx())
	require.Equal(t, Height, img.Bounds().Dy())

	assert.Equal(t, backgroundTop, img.RGBAAt(0, 0))
	assert.Equal(t, backgroundBottom, img.RGBAAt(0, Height-1))

	// the score bar is filled up to the score
	accent := BucketColor(rubric.BucketOpportunistic)
	assert.Equal(t, accent, img.RGBAAt(201, 470))
	assert.Equal(t, accent, img.RGBAAt(200+399, 470))
	assert.Equal(t, trackColor, img.RGBAAt(Width-201, 470))
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(zap.NewNop()).RegisterRoutes(r.Group("/api"), r, middleware.PublicCache(0))

	for _, path := range []string{"/api/card.png", "/og"} {
		req := httptest.NewRequest(http.MethodGet, path+"?score=88&bucket=Ancient+Vampire&mode=politics&roast=Bah", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Cache-Control"), "public")

		img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, Width, img.Bounds().Dx())
	}
}
