package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hitss/task-manager/internal/core/domain"
	"github.com/hitss/task-manager/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists queued events.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("persist audit event: %w", err)
	}
	s.log.Debug().
		Str("username", event.Username).
		Str("action", string(event.Action)).
		Str("outcome", event.Outcome).
		Msg("audit event recorded")
	return nil
}
