package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditService keeps a trail of inventory writes. A nil repository disables it.
type AuditService struct {
	repo   ports.AuditRepository
	logger ports.LoggerPort
	now    func() time.Time
}

func NewAuditService(repo ports.AuditRepository, logger ports.LoggerPort) *AuditService {
	return &AuditService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *AuditService) Enabled() bool {
	return s.repo != nil
}

// Record never fails the caller; audit problems are only logged.
func (s *AuditService) Record(ctx context.Context, userID string, action domain.AuditAction, bikeID, bikeModel string) {
	if !s.Enabled() {
		return
	}

	event := &domain.AuditEvent{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     action,
		BikeID:     bikeID,
		BikeModel:  bikeModel,
		OccurredAt: s.now().UTC(),
	}
	if err := s.repo.Record(ctx, event); err != nil {
		s.logger.Warn("Failed to record audit event", map[string]interface{}{
			"action":  action,
			"bike_id": bikeID,
			"error":   err.Error(),
		})
	}
}

func (s *AuditService) List(ctx context.Context, limit int) ([]*domain.AuditEvent, error) {
	if !s.Enabled() {
		return []*domain.AuditEvent{}, nil
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	events, err := s.repo.List(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list audit events", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return events, nil
}
