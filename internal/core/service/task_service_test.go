package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hitss/task-manager/internal/core/domain"
	"github.com/hitss/task-manager/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	created := cloneTask(task)
	created.ID = r.nextID
	r.nextID++
	r.tasks[created.ID] = cloneTask(created)
	return created, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	if t, ok := r.tasks[id]; ok {
		return cloneTask(t), nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) FindAll(_ context.Context) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0, len(r.tasks))
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *stubTaskRepo) FindByOwner(_ context.Context, userID string) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0)
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok && t.UserID == userID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	stored, ok := r.tasks[task.ID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	stored.Title = task.Title
	stored.Description = task.Description
	stored.Completed = task.Completed
	return cloneTask(stored), nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers: a store seeded with alice (USER), bob (USER) and root (ADMIN).
// ---------------------------------------------------------------------------

func seededUsers() *stubUserRepo {
	repo := newStubUserRepo()
	now := time.Now().UTC()
	repo.users["alice"] = &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", Roles: []domain.Role{domain.RoleUser}, CreatedAt: now}
	repo.users["bob"] = &domain.User{ID: "u2", Username: "bob", Email: "bob@example.com", Roles: []domain.Role{domain.RoleUser}, CreatedAt: now}
	repo.users["root"] = &domain.User{ID: "u3", Username: "root", Email: "root@example.com", Roles: []domain.Role{domain.RoleAdmin, domain.RoleUser}, CreatedAt: now}
	return repo
}

func newTaskSvc(tasks *stubTaskRepo, users *stubUserRepo) *TaskService {
	return NewTaskService(tasks, users, nil, zerolog.Nop())
}

func mustCreateTask(t *testing.T, svc *TaskService, title, username string) *domain.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), ports.TaskInput{Title: title}, username)
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	return task
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestTaskService_Create_SetsOwnerAndDefaults(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	task := mustCreateTask(t, svc, "Buy milk", "alice")

	if task.ID != 1 {
		t.Fatalf("expected id 1, got %d", task.ID)
	}
	if task.UserID != "u1" {
		t.Fatalf("expected owner u1, got %s", task.UserID)
	}
	if task.Completed {
		t.Fatalf("expected completed=false by default")
	}
	if task.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestTaskService_Create_UnknownUser(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	if _, err := svc.Create(context.Background(), ports.TaskInput{Title: "x"}, "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTaskService_Create_Get_RoundTrip(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	created, err := svc.Create(context.Background(), ports.TaskInput{
		Title:       "Buy milk",
		Description: "two liters",
	}, "alice")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	fetched, err := svc.GetByID(context.Background(), created.ID, "alice")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Title != created.Title ||
		fetched.Description != created.Description ||
		fetched.Completed != created.Completed ||
		!fetched.CreatedAt.Equal(created.CreatedAt) ||
		fetched.UserID != created.UserID {
		t.Fatalf("round-trip mismatch: created %+v, fetched %+v", created, fetched)
	}
}

func TestTaskService_ListAll_ScopedByOwner(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	mustCreateTask(t, svc, "a1", "alice")
	mustCreateTask(t, svc, "a2", "alice")
	mustCreateTask(t, svc, "b1", "bob")

	aliceTasks, err := svc.ListAll(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(aliceTasks) != 2 {
		t.Fatalf("expected exactly alice's 2 tasks, got %d", len(aliceTasks))
	}
	for _, task := range aliceTasks {
		if task.UserID != "u1" {
			t.Fatalf("alice's list leaked task of %s", task.UserID)
		}
	}
}

func TestTaskService_ListAll_AdminSeesEverything(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	mustCreateTask(t, svc, "a1", "alice")
	mustCreateTask(t, svc, "b1", "bob")

	all, err := svc.ListAll(context.Background(), "root")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected every task for admin, got %d", len(all))
	}
}

func TestTaskService_Get_OwnershipGate(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	task := mustCreateTask(t, svc, "Buy milk", "alice")

	// Non-owner gets 403, not 404: the task exists, access is denied.
	if _, err := svc.GetByID(context.Background(), task.ID, "bob"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for bob, got %v", err)
	}

	// Admin bypasses the ownership gate.
	got, err := svc.GetByID(context.Background(), task.ID, "root")
	if err != nil {
		t.Fatalf("admin get failed: %v", err)
	}
	if got.Title != "Buy milk" {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestTaskService_Get_NotFound(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	if _, err := svc.GetByID(context.Background(), 99, "alice"); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Update_ReplacesFieldsKeepsOwnerAndCreatedAt(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	task := mustCreateTask(t, svc, "Buy milk", "alice")

	updated, err := svc.Update(context.Background(), task.ID, ports.TaskInput{
		Title:       "Buy oat milk",
		Description: "barista edition",
		Completed:   true,
	}, "alice")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Title != "Buy oat milk" || updated.Description != "barista edition" || !updated.Completed {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if updated.UserID != task.UserID {
		t.Fatalf("owner must be immutable, got %s", updated.UserID)
	}
	if !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Fatalf("created_at must be immutable")
	}
}

func TestTaskService_Update_OwnershipGate(t *testing.T) {
	svc := newTaskSvc(newStubTaskRepo(), seededUsers())

	task := mustCreateTask(t, svc, "Buy milk", "alice")

	if _, err := svc.Update(context.Background(), task.ID, ports.TaskInput{Title: "hijack"}, "bob"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for bob, got %v", err)
	}

	if _, err := svc.Update(context.Background(), task.ID, ports.TaskInput{Title: "admin edit"}, "root"); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestTaskService_Delete(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTaskSvc(repo, seededUsers())

	task := mustCreateTask(t, svc, "Buy milk", "alice")

	if err := svc.Delete(context.Background(), task.ID, "bob"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for bob, got %v", err)
	}

	if err := svc.Delete(context.Background(), task.ID, "alice"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// Deleting again is a clean not-found, not a crash.
	if err := svc.Delete(context.Background(), task.ID, "alice"); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestTaskService_DeniedAccessIsAudited(t *testing.T) {
	recorder := &stubRecorder{}
	svc := NewTaskService(newStubTaskRepo(), seededUsers(), recorder, zerolog.Nop())

	task := mustCreateTask(t, svc, "Buy milk", "alice")
	_, _ = svc.GetByID(context.Background(), task.ID, "bob")

	if len(recorder.events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(recorder.events))
	}
	e := recorder.events[0]
	if e.Action != domain.AuditAccessDenied || e.Username != "bob" {
		t.Fatalf("unexpected audit event: %+v", e)
	}
}
