package domain

import "context"

// Repository defines the interface for task persistence. Save assigns the
// task its identifier (max existing id + 1) and persists the full
// collection; FindAll returns tasks in insertion order.
type Repository interface {
	Save(ctx context.Context, task *Task) error
	FindAll(ctx context.Context) ([]*Task, error)
}
