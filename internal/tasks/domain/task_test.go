package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/tasks/domain"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		dueDate     string
		priority    string
		wantErr     error
	}{
		{"valid", "Write report", "Q3 summary", "2024-07-15", "High", nil},
		{"empty description allowed", "Review", "", "2024-07-20", "Low", nil},
		{"lowercase priority allowed", "Review", "", "2024-07-20", "low", nil},
		{"empty title", "", "x", "2024-07-15", "Low", domain.ErrEmptyTitle},
		{"whitespace-only title", "   ", "x", "2024-07-15", "Low", domain.ErrEmptyTitle},
		{"bad priority", "Review", "", "2024-07-20", "Critical", domain.ErrInvalidPriority},
		{"bad due date", "Review", "", "2024-13-01", "Low", domain.ErrInvalidDueDate},
		{"wrong date separator", "Review", "", "2024/01/01", "Low", domain.ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := domain.NewTask(tt.title, tt.description, tt.dueDate, tt.priority)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 0, task.ID())
				assert.Equal(t, tt.description, task.Description())
				assert.Equal(t, tt.dueDate, task.DueDate().String())
			}
		})
	}
}

// Validation runs title, then priority, then due date; the first failure
// wins even when later fields are also invalid.
func TestNewTask_ValidationOrder(t *testing.T) {
	_, err := domain.NewTask("", "x", "not-a-date", "Critical")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = domain.NewTask("ok", "x", "not-a-date", "Critical")
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestNewTask_TrimsTitle(t *testing.T) {
	task, err := domain.NewTask("  Write report  ", "", "2024-07-15", "High")
	require.NoError(t, err)
	assert.Equal(t, "Write report", task.Title())
}

func TestNewTask_NormalizesPriority(t *testing.T) {
	task, err := domain.NewTask("Write report", "", "2024-07-15", "hIGh")
	require.NoError(t, err)
	assert.Equal(t, "High", task.Priority().String())
}

func TestTask_AssignID(t *testing.T) {
	task, err := domain.NewTask("Write report", "", "2024-07-15", "High")
	require.NoError(t, err)

	require.NoError(t, task.AssignID(7))
	assert.Equal(t, 7, task.ID())

	err = task.AssignID(8)
	assert.ErrorIs(t, err, domain.ErrIDAssigned)
	assert.Equal(t, 7, task.ID())
}

func TestTask_Equals(t *testing.T) {
	a := domain.RehydrateTask(1, "a", "", domain.MustParseDueDate("2024-07-15"), domain.PriorityLow)
	b := domain.RehydrateTask(1, "b", "other", domain.MustParseDueDate("2024-07-20"), domain.PriorityHigh)
	c := domain.RehydrateTask(2, "a", "", domain.MustParseDueDate("2024-07-15"), domain.PriorityLow)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}
