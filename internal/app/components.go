package app

import (
	"errors"
	"fmt"

	"github.com/CyberTud/dracula-wtf/internal/config"
	"github.com/CyberTud/dracula-wtf/internal/database"
	"github.com/CyberTud/dracula-wtf/internal/modules/analytics"
	"github.com/CyberTud/dracula-wtf/internal/modules/roast"
	"github.com/CyberTud/dracula-wtf/internal/pkg/ratelimit"
	pkgredis "github.com/CyberTud/dracula-wtf/internal/pkg/redis"
	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"github.com/CyberTud/dracula-wtf/internal/share"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// components are the long-lived services behind the routes. The memory
// fields are set only when the matching driver is "memory"; they need the
// periodic sweeps registered in cron.go.
type components struct {
	engine    *rubric.Engine
	limiter   ratelimit.Allower
	results   share.Store
	analytics *analytics.Service
	roaster   *roast.Generator

	memLimiter *ratelimit.Limiter
	memResults *share.MemoryCache

	redis *pkgredis.Client
	db    *gorm.DB
}

func buildComponents(cfg *config.AppConfig, logger *zap.Logger) (*components, error) {
	d := &components{engine: rubric.Default()}

	if cfg.UsesRedis() {
		rc, err := pkgredis.Connect(cfg.Redis.URLValue())
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		d.redis = rc
	}

	switch cfg.RateLimit.Driver {
	case config.DriverRedis:
		d.limiter = ratelimit.NewRedis(d.redis, cfg.RateLimit.Window, cfg.RateLimit.Limit)
	default:
		d.memLimiter = ratelimit.New(cfg.RateLimit.Window, cfg.RateLimit.Limit)
		d.limiter = d.memLimiter
	}

	switch cfg.Cache.Driver {
	case config.DriverRedis:
		d.results = share.NewRedisCache(d.redis, cfg.Cache.TTL)
	default:
		d.memResults = share.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.MaxEntries)
		d.results = d.memResults
	}

	var store analytics.Store
	switch cfg.Analytics.Driver {
	case config.DriverMySQL:
		db, err := database.Connect(cfg.Database.DSNValue(), cfg.IsDev(), true)
		if err != nil {
			d.close(logger)
			return nil, fmt.Errorf("database: %w", err)
		}
		d.db = db
		store = analytics.NewGormStore(db)
	default:
		store = analytics.NewMemoryStore(cfg.Analytics.MaxEvents)
	}
	d.analytics = analytics.NewService(store, cfg.Analytics.MaxEvents, logger.Named("Analytics"))

	provider, err := roast.NewProvider(cfg.AI)
	if errors.Is(err, roast.ErrMissingAPIKey) {
		logger.Warn("roast provider has no api key, serving built-in captions", zap.String("provider", cfg.AI.Provider))
		provider, err = nil, nil
	}
	if err != nil {
		d.close(logger)
		return nil, fmt.Errorf("roast provider: %w", err)
	}
	if provider == nil {
		logger.Info("roast provider disabled, serving built-in captions")
	} else {
		logger.Info("roast provider ready", zap.String("provider", cfg.AI.Provider), zap.String("model", cfg.AI.Model))
	}
	d.roaster = roast.NewGenerator(provider, cfg.AI.Timeout, logger.Named("Roast"))

	return d, nil
}

func (d *components) close(logger *zap.Logger) {
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			logger.Warn("redis close failed", zap.Error(err))
		}
	}
	if d.db != nil {
		if err := database.Close(d.db); err != nil {
			logger.Warn("database close failed", zap.Error(err))
		}
	}
}
