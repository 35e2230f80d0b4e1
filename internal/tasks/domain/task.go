package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTitle = errors.New("task title cannot be empty")
	ErrIDAssigned = errors.New("task id is already assigned")
)

// Task represents one user-created to-do item. Tasks are immutable after
// creation; the repository assigns the id when the task is first saved.
type Task struct {
	id          int
	title       string
	description string
	dueDate     DueDate
	priority    Priority
}

// NewTask validates the raw input fields and creates a task. Validation
// runs in order title, priority, due date, each failing with its own
// sentinel error. Titles are trimmed; whitespace-only titles are rejected.
func NewTask(title, description, dueDate, priority string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}

	d, err := ParseDueDate(dueDate)
	if err != nil {
		return nil, err
	}

	return &Task{
		title:       title,
		description: description,
		dueDate:     d,
		priority:    p,
	}, nil
}

// RehydrateTask recreates a task from persisted state, bypassing input
// validation. Only the persistence layer should call this.
func RehydrateTask(id int, title, description string, dueDate DueDate, priority Priority) *Task {
	return &Task{
		id:          id,
		title:       title,
		description: description,
		dueDate:     dueDate,
		priority:    priority,
	}
}

func (t *Task) ID() int             { return t.id }
func (t *Task) Title() string       { return t.title }
func (t *Task) Description() string { return t.description }
func (t *Task) DueDate() DueDate    { return t.dueDate }
func (t *Task) Priority() Priority  { return t.priority }

// AssignID sets the store-assigned identifier. A task can be assigned an
// id exactly once.
func (t *Task) AssignID(id int) error {
	if t.id != 0 {
		return ErrIDAssigned
	}
	t.id = id
	return nil
}

// Equals checks if two tasks have the same identity.
func (t *Task) Equals(other *Task) bool {
	if other == nil {
		return false
	}
	return t.id == other.id
}
