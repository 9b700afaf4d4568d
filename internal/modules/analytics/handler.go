package analytics

import (
	"github.com/CyberTud/dracula-wtf/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const sessionCookie = "session_id"

// Handler exposes event tracking and statistics.
type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/analytics")
	g.POST("/track", h.track)
	g.GET("/stats", h.stats)
	g.GET("/events", h.events)
}

type trackRequest struct {
	Event      string                 `json:"event"      binding:"required,max=64"`
	Properties map[string]interface{} `json:"properties"`
}

func (h *Handler) track(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Event name is required")
		return
	}

	sessionID, _ := c.Cookie(sessionCookie)
	if err := h.svc.Track(c.Request.Context(), req.Event, req.Properties, sessionID, c.GetHeader("User-Agent")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, stats)
}

type eventsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

func (h *Handler) events(c *gin.Context) {
	q := eventsQuery{Limit: recentEventCount}
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "limit must be between 1 and 1000")
		return
	}
	events, err := h.svc.Events(c.Request.Context(), q.Limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, events)
}
