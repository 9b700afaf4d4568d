// Package health reports backend reachability and maintenance job state.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/pkg/cron"
	"github.com/CyberTud/dracula-wtf/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// Pinger is a backend that can be probed, such as Redis or the database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type Handler struct {
	checks  map[string]Pinger
	sched   *cron.Scheduler
	started time.Time
}

// NewHandler builds the health handler. Nil checks are skipped so callers can
// pass optional backends unconditionally.
func NewHandler(sched *cron.Scheduler, checks map[string]Pinger) *Handler {
	live := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			live[name] = p
		}
	}
	return &Handler{checks: live, sched: sched, started: time.Now()}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
	rg.GET("/health/cron", h.cron)
	rg.POST("/health/cron/run/:name", h.runJob)
}

func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	backends := make(map[string]bool, len(h.checks))
	status, code := "ok", http.StatusOK
	for name, p := range h.checks {
		ok := p.Ping(ctx) == nil
		backends[name] = ok
		if !ok {
			status, code = "degraded", http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":   status,
		"backends": backends,
		"uptime":   int64(time.Since(h.started).Seconds()),
	})
}

func (h *Handler) cron(c *gin.Context) {
	items := h.sched.List()
	byName := make(map[string]cron.ListItem, len(items))
	for _, item := range items {
		byName[item.Name] = item
	}
	response.OK(c, byName)
}

func (h *Handler) runJob(c *gin.Context) {
	if err := h.sched.Run(c.Request.Context(), c.Param("name")); err != nil {
		response.NotFoundMsg(c, err.Error())
		return
	}
	response.OK(c, gin.H{"message": "job finished"})
}
