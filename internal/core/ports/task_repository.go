package ports

import (
	"context"

	"github.com/hitss/task-manager/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Mutations are
// single atomic writes; conflicting updates on the same id are
// serialized by the store itself, not by callers.
type TaskRepository interface {
	// Create persists a new task and returns it with the server-assigned id.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	FindAll(ctx context.Context) ([]*domain.Task, error)
	FindByOwner(ctx context.Context, userID string) ([]*domain.Task, error)
	// Update replaces title, description and completed. Owner and
	// created_at are never touched.
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Delete removes the task, returning domain.ErrTaskNotFound when no
	// document matched the id.
	Delete(ctx context.Context, id int64) error
}
