package domain

import "time"

// Task is the resource guarded by the ownership policy. UserID is set
// once at creation and never changes afterwards; the same goes for
// CreatedAt.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `json:"user_id"`
}
