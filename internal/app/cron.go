package app

import (
	"context"
	"fmt"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/config"
	pkgcron "github.com/CyberTud/dracula-wtf/internal/pkg/cron"
)

const analyticsPruneInterval = time.Hour

// registerCronJobs registers the maintenance jobs for the configured drivers.
// Redis keys expire on their own, so only in-memory state is swept.
func registerCronJobs(sched *pkgcron.Scheduler, d *components, cfg *config.AppConfig) error {
	var jobs []pkgcron.Job

	if d.memLimiter != nil {
		limiter := d.memLimiter
		jobs = append(jobs, pkgcron.Job{
			Name:        "sweep_rate_limits",
			Description: "Drop rate limit windows older than two windows",
			Interval:    limiter.Window(),
			Fn: func(ctx context.Context) error {
				limiter.Sweep(time.Now())
				return nil
			},
		})
	}

	if d.memResults != nil {
		cache := d.memResults
		jobs = append(jobs, pkgcron.Job{
			Name:        "sweep_result_cache",
			Description: "Evict expired shared results",
			Interval:    sweepInterval(cfg.Cache.TTL),
			Fn: func(ctx context.Context) error {
				cache.Sweep(time.Now())
				return nil
			},
		})
	}

	svc := d.analytics
	jobs = append(jobs, pkgcron.Job{
		Name:        "prune_analytics",
		Description: fmt.Sprintf("Keep the newest %d analytics events", cfg.Analytics.MaxEvents),
		Interval:    analyticsPruneInterval,
		Fn:          svc.Prune,
	})

	for _, job := range jobs {
		if err := sched.Register(job); err != nil {
			return err
		}
	}
	return nil
}

// sweepInterval runs cache sweeps a few times per TTL, but not more than once
// a minute.
func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Minute {
		return time.Minute
	}
	return interval
}
