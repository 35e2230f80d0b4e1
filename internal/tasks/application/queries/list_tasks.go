package queries

import (
	"context"

	"taskdeck/internal/tasks/domain"
)

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID          int
	Title       string
	Description string
	Priority    string
	DueDate     string
}

// ListTasksQuery contains the parameters for listing tasks. Tasks are
// always returned in insertion order; there are no filters.
type ListTasksQuery struct{}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo domain.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo domain.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	tasks, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toTaskDTOs(tasks), nil
}

func toTaskDTOs(tasks []*domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = TaskDTO{
			ID:          t.ID(),
			Title:       t.Title(),
			Description: t.Description(),
			Priority:    t.Priority().String(),
			DueDate:     t.DueDate().String(),
		}
	}
	return dtos
}
