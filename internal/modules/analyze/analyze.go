// Package analyze serves POST /api/analyze: scoring, caption, share links.
package analyze

import (
	"context"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/models"
	"github.com/CyberTud/dracula-wtf/internal/pkg/response"
	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"github.com/CyberTud/dracula-wtf/internal/share"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Roaster produces the caption for a result. It must not fail.
type Roaster interface {
	Generate(ctx context.Context, res rubric.Result) string
}

// Recorder receives server-side analytics events.
type Recorder interface {
	Record(ctx context.Context, event string, props map[string]interface{})
}

// Handler wires the rubric engine to the caption generator and result cache.
type Handler struct {
	engine   *rubric.Engine
	roaster  Roaster
	store    share.Store
	recorder Recorder
	baseURL  string
	log      *zap.Logger
	now      func() time.Time
}

func NewHandler(engine *rubric.Engine, roaster Roaster, store share.Store, recorder Recorder, baseURL string, log *zap.Logger) *Handler {
	return &Handler{
		engine:   engine,
		roaster:  roaster,
		store:    store,
		recorder: recorder,
		baseURL:  baseURL,
		log:      log,
		now:      time.Now,
	}
}

// RegisterRoutes mounts the endpoint; guards run before the handler.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	rg.POST("/analyze", append(guards, h.analyze)...)
}

type analyzeRequest struct {
	Text string `json:"text" binding:"required,min=10,max=5000"`
	Mode string `json:"mode"`
}

// Response is the body returned for a successful analysis.
type Response struct {
	rubric.Result
	Roast string     `json:"roast"`
	Share share.Data `json:"share"`
}

func (h *Handler) analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recorder.Record(ctx, models.EventAnalysisError, map[string]interface{}{"reason": "invalid_text"})
		response.BadRequest(c, "Invalid request: text must be between 10 and 5000 characters")
		return
	}
	mode, err := rubric.ParseMode(req.Mode)
	if err != nil {
		h.recorder.Record(ctx, models.EventAnalysisError, map[string]interface{}{"reason": "invalid_mode"})
		response.BadRequest(c, "Invalid request: mode must be one of startup, dating, politics, everyday")
		return
	}

	res := h.engine.Analyze(req.Text, mode)
	if res.Evidence == nil {
		res.Evidence = []string{}
	}
	roast := h.roaster.Generate(ctx, res)

	now := h.now()
	id := share.NewResultID(req.Text, now)
	links := share.BuildURLs(h.baseURL, id, res, roast)

	if err := h.store.Put(ctx, share.NewEntry(id, res, roast, now)); err != nil {
		h.log.Warn("result cache put failed", zap.String("id", id), zap.Error(err))
	}
	h.recorder.Record(ctx, models.EventTextAnalyzed, map[string]interface{}{
		"mode":       string(res.Mode),
		"score":      res.OverallScore,
		"bucket":     string(res.Bucket),
		"textLength": len([]rune(req.Text)),
	})

	response.OK(c, Response{Result: res, Roast: roast, Share: links})
}
