package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dogukan2201/ChairUpBackend/internal/api/metrics"
	"github.com/dogukan2201/ChairUpBackend/internal/core/ports"
)

// AuditService persists auth audit events dequeued by the dispatcher workers.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) Process(ctx context.Context, event ports.AuditEventInput) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditErrorsTotal.Inc()
		s.logger.Error().Err(err).
			Str("action", event.Action).
			Str("kind", string(event.Kind)).
			Msg("failed to persist audit event")
		return err
	}

	metrics.AuditEventsTotal.WithLabelValues(event.Action).Inc()
	return nil
}
