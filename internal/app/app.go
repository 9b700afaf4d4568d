// Package app assembles the HTTP server from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/CyberTud/dracula-wtf/internal/config"
	"github.com/CyberTud/dracula-wtf/internal/middleware"
	pkgcron "github.com/CyberTud/dracula-wtf/internal/pkg/cron"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	logger *zap.Logger
	deps   *components
	sched  *pkgcron.Scheduler
	cancel context.CancelFunc
}

// New builds the components selected by cfg, registers routes and starts the
// maintenance jobs.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	deps, err := buildComponents(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins, cfg.IsDev())))

	sched := pkgcron.New(logger.Named("CronService"))
	if err := registerCronJobs(sched, deps, cfg); err != nil {
		deps.close(logger)
		return nil, fmt.Errorf("cron: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	a := &App{cfg: cfg, router: router, logger: logger, deps: deps, sched: sched, cancel: cancel}
	a.registerRoutes()
	return a, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops the maintenance jobs and releases backend connections.
func (a *App) Shutdown() {
	a.cancel()
	a.sched.Stop()
	a.deps.close(a.logger)
}
