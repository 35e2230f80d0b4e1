package commands

import (
	"context"

	"taskdeck/internal/tasks/domain"
)

// AddTaskCommand contains the raw user input for creating a task.
type AddTaskCommand struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
}

// AddTaskResult contains the result of adding a task.
type AddTaskResult struct {
	TaskID   int
	Title    string
	Priority string
	DueDate  string
}

// AddTaskHandler handles the AddTaskCommand.
type AddTaskHandler struct {
	taskRepo domain.Repository
}

// NewAddTaskHandler creates a new AddTaskHandler.
func NewAddTaskHandler(taskRepo domain.Repository) *AddTaskHandler {
	return &AddTaskHandler{taskRepo: taskRepo}
}

// Handle executes the AddTaskCommand. Validation happens entirely before
// any mutation, so a failing command leaves the store untouched.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) (*AddTaskResult, error) {
	t, err := domain.NewTask(cmd.Title, cmd.Description, cmd.DueDate, cmd.Priority)
	if err != nil {
		return nil, err
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	return &AddTaskResult{
		TaskID:   t.ID(),
		Title:    t.Title(),
		Priority: t.Priority().String(),
		DueDate:  t.DueDate().String(),
	}, nil
}
