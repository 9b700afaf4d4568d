// Package result serves shared results by id.
package result

import (
	"context"
	"strconv"

	"github.com/CyberTud/dracula-wtf/internal/models"
	"github.com/CyberTud/dracula-wtf/internal/pkg/response"
	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"github.com/CyberTud/dracula-wtf/internal/share"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recorder receives server-side analytics events.
type Recorder interface {
	Record(ctx context.Context, event string, props map[string]interface{})
}

type Handler struct {
	store    share.Store
	recorder Recorder
	baseURL  string
	log      *zap.Logger
}

func NewHandler(store share.Store, recorder Recorder, baseURL string, log *zap.Logger) *Handler {
	return &Handler{store: store, recorder: recorder, baseURL: baseURL, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/results/:id", h.get)
}

// Response is a cached entry, or one rebuilt from permalink parameters after
// the cache dropped it. Rebuilt entries carry no category scores or evidence.
type Response struct {
	share.Entry
	Reconstructed bool       `json:"reconstructed"`
	Share         share.Data `json:"share"`
}

func (h *Handler) get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if !share.ValidID(id) {
		response.NotFoundMsg(c, "Result not found")
		return
	}

	entry, ok, err := h.store.Get(ctx, id)
	if err != nil {
		h.log.Warn("result cache get failed", zap.String("id", id), zap.Error(err))
	}

	reconstructed := false
	if !ok {
		entry, ok = reconstruct(id, c)
		reconstructed = ok
	}
	if !ok {
		response.NotFoundMsg(c, "Result not found")
		return
	}
	if entry.Evidence == nil {
		entry.Evidence = []string{}
	}

	h.recorder.Record(ctx, models.EventResultViewed, map[string]interface{}{
		"score":         entry.OverallScore,
		"bucket":        string(entry.Bucket),
		"reconstructed": reconstructed,
	})

	res := rubric.Result{
		Mode:         entry.Mode,
		OverallScore: entry.OverallScore,
		Bucket:       entry.Bucket,
		Scores:       entry.Scores,
		Evidence:     entry.Evidence,
	}
	response.OK(c, Response{
		Entry:         entry,
		Reconstructed: reconstructed,
		Share:         share.BuildURLs(h.baseURL, id, res, entry.Roast),
	})
}

// reconstruct rebuilds an entry from the score, bucket, mode and roast
// query parameters. Both score and a known bucket are required.
func reconstruct(id string, c *gin.Context) (share.Entry, bool) {
	rawScore, hasScore := c.GetQuery("score")
	rawBucket, hasBucket := c.GetQuery("bucket")
	if !hasScore || !hasBucket {
		return share.Entry{}, false
	}

	score, err := strconv.Atoi(rawScore)
	if err != nil || score < 0 || score > 100 {
		return share.Entry{}, false
	}
	bucket := rubric.Bucket(rawBucket)
	known := false
	for _, b := range rubric.Buckets {
		if b == bucket {
			known = true
			break
		}
	}
	if !known {
		return share.Entry{}, false
	}

	mode, err := rubric.ParseMode(c.Query("mode"))
	if err != nil {
		mode = rubric.ModeEveryday
	}

	return share.Entry{
		ID:           id,
		Mode:         mode,
		OverallScore: score,
		Bucket:       bucket,
		Evidence:     []string{},
		Roast:        c.Query("roast"),
	}, true
}
