package queries_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/tasks/application/commands"
	"taskdeck/internal/tasks/application/queries"
	"taskdeck/internal/tasks/infrastructure/persistence"
)

func setupRepo(t *testing.T) *persistence.FileTaskRepository {
	t.Helper()
	repo, err := persistence.NewFileTaskRepository(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, err)
	return repo
}

func TestListTasksHandler_EmptyStore(t *testing.T) {
	handler := queries.NewListTasksHandler(setupRepo(t))

	tasks, err := handler.Handle(context.Background(), queries.ListTasksQuery{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListTasksHandler_ReturnsInsertionOrder(t *testing.T) {
	repo := setupRepo(t)
	addHandler := commands.NewAddTaskHandler(repo)
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, commands.AddTaskCommand{
		Title: "Write report", Description: "Q3 summary", DueDate: "2024-07-15", Priority: "High",
	})
	require.NoError(t, err)
	_, err = addHandler.Handle(ctx, commands.AddTaskCommand{
		Title: "Review", DueDate: "2024-07-20", Priority: "Low",
	})
	require.NoError(t, err)

	handler := queries.NewListTasksHandler(repo)
	tasks, err := handler.Handle(ctx, queries.ListTasksQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, queries.TaskDTO{
		ID:          1,
		Title:       "Write report",
		Description: "Q3 summary",
		Priority:    "High",
		DueDate:     "2024-07-15",
	}, tasks[0])
	assert.Equal(t, 2, tasks[1].ID)
	assert.Equal(t, "Review", tasks[1].Title)
}
