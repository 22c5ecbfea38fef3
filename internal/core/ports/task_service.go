package ports

import (
	"context"

	"github.com/hitss/task-manager/internal/core/domain"
)

// TaskInput carries the mutable task fields for create and update.
// Owner and created_at are server-controlled and intentionally absent.
type TaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// TaskService defines the task use-cases. Every operation receives the
// authenticated username and re-resolves the user from the store, so
// role and ownership decisions always reflect current stored roles
// rather than the token snapshot.
type TaskService interface {
	Create(ctx context.Context, input TaskInput, username string) (*domain.Task, error)
	ListAll(ctx context.Context, username string) ([]*domain.Task, error)
	GetByID(ctx context.Context, id int64, username string) (*domain.Task, error)
	Update(ctx context.Context, id int64, input TaskInput, username string) (*domain.Task, error)
	Delete(ctx context.Context, id int64, username string) error
}
