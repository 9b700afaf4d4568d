package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service records events and serves statistics over a Store.
type Service struct {
	store Store
	keep  int
	log   *zap.Logger
	now   func() time.Time
}

func NewService(store Store, keep int, log *zap.Logger) *Service {
	if keep <= 0 {
		keep = DefaultMaxEvents
	}
	return &Service{store: store, keep: keep, log: log, now: time.Now}
}

// Track stores one event. The "text" property is always dropped so that
// submitted text never reaches the store.
func (s *Service) Track(ctx context.Context, event string, props map[string]interface{}, sessionID, userAgent string) error {
	props = copyProperties(props)
	delete(props, "text")

	ev := &models.AnalyticsEvent{
		Base:       models.Base{ID: uuid.NewString()},
		Event:      event,
		Properties: props,
		SessionID:  sessionID,
		UserAgent:  userAgent,
		Timestamp:  s.now().UTC(),
	}
	if err := s.store.Add(ctx, ev); err != nil {
		return fmt.Errorf("track %s: %w", event, err)
	}
	return nil
}

// Record tracks a server-side event, logging instead of returning failures.
func (s *Service) Record(ctx context.Context, event string, props map[string]interface{}) {
	if err := s.Track(ctx, event, props, "", ""); err != nil {
		s.log.Warn("analytics record failed", zap.String("event", event), zap.Error(err))
	}
}

// Stats computes the dashboard statistics for now.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	now := s.now().UTC()
	window, err := s.store.Since(ctx, now.Add(-statsWindow))
	if err != nil {
		return Stats{}, err
	}
	recent, err := s.store.Recent(ctx, recentEventCount)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(window, recent, now), nil
}

// Events returns up to limit events, newest first.
func (s *Service) Events(ctx context.Context, limit int) ([]models.AnalyticsEvent, error) {
	return s.store.Recent(ctx, limit)
}

// Prune trims the store to its retention bound.
func (s *Service) Prune(ctx context.Context) error {
	n, err := s.store.Trim(ctx, s.keep)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Info("analytics events pruned", zap.Int64("removed", n))
	}
	return nil
}
