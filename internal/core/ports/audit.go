package ports

import (
	"context"

	"github.com/hitss/task-manager/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence.
// Record must never block the request path; implementations drop or
// queue as needed.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditService processes a single queued audit event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}
