package services

import (
	"law_console_go/models"
	"law_console_go/store"
	"time"

	"github.com/google/uuid"
)

// TaskService is the mutation API for the task collection
type TaskService struct {
	store *store.Store
}

// NewTaskService creates a task service backed by the given store
func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{store: st}
}

// CreateTaskInput carries the caller-supplied fields for a new task
type CreateTaskInput struct {
	Title  string     `json:"title"`
	CaseID string     `json:"case_id"`
	DueAt  *time.Time `json:"due_at,omitempty"`
}

// CreateTask appends a new pending task to the collection
func (s *TaskService) CreateTask(input CreateTaskInput) *models.Task {
	now := time.Now()
	tasks := s.store.LoadTasks()

	task := models.Task{
		ID:        uuid.New().String(),
		Title:     input.Title,
		CaseID:    input.CaseID,
		Status:    models.TaskStatusPending,
		DueAt:     input.DueAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tasks = append(tasks, task)
	s.store.SaveTasks(tasks)
	return &task
}

// CompleteTask marks a task done. Returns false when no task has the ID.
func (s *TaskService) CompleteTask(id string) bool {
	tasks := s.store.LoadTasks()
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Status = models.TaskStatusDone
		tasks[i].UpdatedAt = time.Now()
		s.store.SaveTasks(tasks)
		return true
	}
	return false
}

// ListTasks returns tasks that were not soft-deleted
func (s *TaskService) ListTasks() []models.Task {
	tasks := s.store.LoadTasks()
	listed := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Deleted {
			continue
		}
		listed = append(listed, t)
	}
	return listed
}
