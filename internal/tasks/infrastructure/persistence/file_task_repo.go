package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"taskdeck/internal/tasks/domain"
)

var (
	// ErrStoreCorrupt indicates the persisted file exists but cannot be
	// parsed back into a task collection.
	ErrStoreCorrupt = errors.New("task store is corrupt")

	// ErrPersistenceFailure indicates the collection could not be written
	// back to disk. The previous file contents are left intact.
	ErrPersistenceFailure = errors.New("failed to persist task store")
)

// taskRecord is the on-disk shape of a task.
type taskRecord struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
}

// FileTaskRepository implements domain.Repository backed by a single JSON
// file. The whole collection is loaded at construction and rewritten on
// every save. The file is not locked: with two concurrent instances the
// last writer wins, which is accepted for a single-user local tool.
type FileTaskRepository struct {
	path  string
	tasks []*domain.Task
}

// NewFileTaskRepository opens the repository at path. A missing file is an
// empty store; a file that cannot be parsed fails with ErrStoreCorrupt.
func NewFileTaskRepository(path string) (*FileTaskRepository, error) {
	r := &FileTaskRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileTaskRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.tasks = nil
			return nil
		}
		return fmt.Errorf("read %s: %w", r.path, err)
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreCorrupt, r.path, err)
	}

	tasks := make([]*domain.Task, 0, len(records))
	for _, rec := range records {
		priority, err := domain.ParsePriority(rec.Priority)
		if err != nil {
			return fmt.Errorf("%w: %s: task %d has priority %q", ErrStoreCorrupt, r.path, rec.ID, rec.Priority)
		}
		dueDate, err := domain.ParseDueDate(rec.DueDate)
		if err != nil {
			return fmt.Errorf("%w: %s: task %d has due date %q", ErrStoreCorrupt, r.path, rec.ID, rec.DueDate)
		}
		tasks = append(tasks, domain.RehydrateTask(rec.ID, rec.Title, rec.Description, dueDate, priority))
	}

	r.tasks = tasks
	return nil
}

// Save assigns the task the next free identifier (max existing id + 1, or
// 1 for an empty store), appends it, and rewrites the file. On a write
// failure the in-memory collection is rolled back, so a failed save leaves
// both memory and disk unchanged.
func (r *FileTaskRepository) Save(ctx context.Context, t *domain.Task) error {
	if err := t.AssignID(r.nextID()); err != nil {
		return err
	}

	r.tasks = append(r.tasks, t)
	if err := r.persist(); err != nil {
		r.tasks = r.tasks[:len(r.tasks)-1]
		return err
	}
	return nil
}

// FindAll returns the tasks in insertion order, which is also ascending id
// order since ids are assigned monotonically and never reused.
func (r *FileTaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	out := make([]*domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *FileTaskRepository) nextID() int {
	maxID := 0
	for _, t := range r.tasks {
		if t.ID() > maxID {
			maxID = t.ID()
		}
	}
	return maxID + 1
}

// persist rewrites the full collection via a temp file and rename, so a
// failure mid-write never truncates the existing store.
func (r *FileTaskRepository) persist() error {
	records := make([]taskRecord, len(r.tasks))
	for i, t := range r.tasks {
		records[i] = taskRecord{
			ID:          t.ID(),
			Title:       t.Title(),
			Description: t.Description(),
			DueDate:     t.DueDate().String(),
			Priority:    t.Priority().String(),
		}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return nil
}
