package app

import (
	"context"

	"github.com/CyberTud/dracula-wtf/internal/middleware"
	"github.com/CyberTud/dracula-wtf/internal/modules/analytics"
	"github.com/CyberTud/dracula-wtf/internal/modules/analyze"
	"github.com/CyberTud/dracula-wtf/internal/modules/card"
	"github.com/CyberTud/dracula-wtf/internal/modules/health"
	"github.com/CyberTud/dracula-wtf/internal/modules/result"
	"github.com/CyberTud/dracula-wtf/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	d := a.deps
	log := a.logger

	r.NoRoute(response.NotFound)
	r.NoMethod(response.MethodNotAllowed)

	api := r.Group("/api")

	rateLimit := middleware.RateLimit(d.limiter, a.cfg.RateLimit.Window, log.Named("RateLimit"))
	analyze.NewHandler(d.engine, d.roaster, d.results, d.analytics, a.cfg.BaseURL, log.Named("Analyze")).
		RegisterRoutes(api, rateLimit)
	result.NewHandler(d.results, d.analytics, a.cfg.BaseURL, log.Named("Result")).
		RegisterRoutes(api)
	card.NewHandler(log.Named("Card")).
		RegisterRoutes(api, r, middleware.PublicCache(0))
	analytics.NewHandler(d.analytics).
		RegisterRoutes(api)

	checks := map[string]health.Pinger{}
	if d.redis != nil {
		checks["redis"] = d.redis
	}
	if d.db != nil {
		db := d.db
		checks["database"] = health.PingFunc(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})
	}
	health.NewHandler(a.sched, checks).RegisterRoutes(api)
}
