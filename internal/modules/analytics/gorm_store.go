package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/models"
	"gorm.io/gorm"
)

// GormStore persists events in MySQL through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) Add(ctx context.Context, event *models.AnalyticsEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

func (s *GormStore) Since(ctx context.Context, t time.Time) ([]models.AnalyticsEvent, error) {
	var events []models.AnalyticsEvent
	if err := s.db.WithContext(ctx).
		Where("timestamp > ?", t).
		Order("timestamp ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("query analytics events: %w", err)
	}
	return events, nil
}

func (s *GormStore) Recent(ctx context.Context, limit int) ([]models.AnalyticsEvent, error) {
	var events []models.AnalyticsEvent
	tx := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("query recent analytics events: %w", err)
	}
	return events, nil
}

func (s *GormStore) Trim(ctx context.Context, keep int) (int64, error) {
	var boundary models.AnalyticsEvent
	err := s.db.WithContext(ctx).
		Select("timestamp").
		Order("timestamp DESC").
		Offset(keep).
		Take(&boundary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find analytics trim boundary: %w", err)
	}

	result := s.db.WithContext(ctx).
		Where("timestamp <= ?", boundary.Timestamp).
		Delete(&models.AnalyticsEvent{})
	if result.Error != nil {
		return 0, fmt.Errorf("trim analytics events: %w", result.Error)
	}
	return result.RowsAffected, nil
}
