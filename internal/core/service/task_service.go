package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hitss/task-manager/internal/core/domain"
	"github.com/hitss/task-manager/internal/core/ports"
)

// TaskService applies the ownership policy around task CRUD. Every
// operation re-resolves the caller from the user store, so the
// admin/owner decision always uses current stored roles rather than the
// token's issuance-time snapshot.
type TaskService struct {
	tasks ports.TaskRepository
	users ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, audit: audit, log: log}
}

// Create persists a new task owned by the calling user.
func (s *TaskService) Create(ctx context.Context, input ports.TaskInput, username string) (*domain.Task, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		CreatedAt:   time.Now().UTC(),
		UserID:      user.ID,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("failed to create task")
		return nil, err
	}

	s.log.Info().Int64("task_id", created.ID).Str("username", username).Msg("task created")
	return created, nil
}

// ListAll returns every task for admins and only owned tasks otherwise.
func (s *TaskService) ListAll(ctx context.Context, username string) ([]*domain.Task, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return s.tasks.FindAll(ctx)
	}
	return s.tasks.FindByOwner(ctx, user.ID)
}

// GetByID returns the task after the ownership gate passes.
func (s *TaskService) GetByID(ctx context.Context, id int64, username string) (*domain.Task, error) {
	_, task, err := s.resolve(ctx, id, username)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Update replaces title, description and completed. Owner and
// created_at are immutable and never taken from the patch.
func (s *TaskService) Update(ctx context.Context, id int64, input ports.TaskInput, username string) (*domain.Task, error) {
	_, task, err := s.resolve(ctx, id, username)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Completed = input.Completed

	updated, err := s.tasks.Update(ctx, task)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("task_id", id).Str("username", username).Msg("task updated")
	return updated, nil
}

// Delete removes the task after the ownership gate passes.
func (s *TaskService) Delete(ctx context.Context, id int64, username string) error {
	_, _, err := s.resolve(ctx, id, username)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("task_id", id).Str("username", username).Msg("task deleted")
	return nil
}

// resolve runs the shared authorization sequence for task-targeting
// operations: resolve user, resolve task (404 when absent), then the
// ownership gate (403 when neither owner nor admin).
func (s *TaskService) resolve(ctx context.Context, id int64, username string) (*domain.User, *domain.Task, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !domain.CanAccessTask(user, task) {
		if s.audit != nil {
			s.audit.Record(domain.AuditEvent{
				Username:  username,
				Action:    domain.AuditAccessDenied,
				Outcome:   "denied",
				Detail:    "task ownership",
				Timestamp: time.Now().UTC(),
			})
		}
		return nil, nil, domain.ErrForbidden
	}
	return user, task, nil
}
