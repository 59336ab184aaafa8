package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/teamtodo/teamtodo-backend/internal/auth"
	"github.com/teamtodo/teamtodo-backend/internal/domain"
	"github.com/teamtodo/teamtodo-backend/internal/repository"
)

// TaskResponse is the representation of a task returned by the service.
type TaskResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	ListID      uint   `json:"list_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		ListID:      t.ListID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateTaskRequest holds the data needed to create a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ListID      uint   `json:"list_id"`
}

// UpdateTaskRequest holds the updatable task fields. Pointer fields
// distinguish "omitted" from "set to zero value" (e.g. done=false).
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

// TaskService defines the operations for managing tasks. Authorization on a
// task is derived from its list's team.
type TaskService interface {
	List(ctx context.Context, actor *auth.Identity) ([]TaskResponse, error)
	Create(ctx context.Context, actor *auth.Identity, req CreateTaskRequest) (*TaskResponse, error)
	Get(ctx context.Context, actor *auth.Identity, id uint) (*TaskResponse, error)
	Update(ctx context.Context, actor *auth.Identity, id uint, req UpdateTaskRequest) (*TaskResponse, error)
	Delete(ctx context.Context, actor *auth.Identity, id uint) error
}

type taskService struct {
	tasks repository.TaskRepository
	lists repository.ListRepository
	log   *zap.SugaredLogger
}

// NewTaskService creates a new instance of taskService.
func NewTaskService(tasks repository.TaskRepository, lists repository.ListRepository, log *zap.SugaredLogger) TaskService {
	return &taskService{tasks: tasks, lists: lists, log: log}
}

func (s *taskService) List(ctx context.Context, actor *auth.Identity) ([]TaskResponse, error) {
	scope := auth.ScopeFor(actor)

	var (
		tasks []domain.Task
		err   error
	)
	switch {
	case scope.All:
		tasks, err = s.tasks.GetAll(ctx)
	case scope.Empty():
		return []TaskResponse{}, nil
	default:
		tasks, err = s.tasks.FindByTeam(ctx, *scope.TeamID)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *toTaskResponse(&tasks[i]))
	}
	return out, nil
}

func (s *taskService) Create(ctx context.Context, actor *auth.Identity, req CreateTaskRequest) (*TaskResponse, error) {
	if req.Title == "" || req.ListID == 0 {
		return nil, fmt.Errorf("%w: title and list_id are required", domain.ErrInvalid)
	}

	list, err := s.loadList(ctx, req.ListID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanAccessTasksOf(actor, list); err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Done:        false,
		ListID:      req.ListID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		s.log.Errorw("create task", "list_id", req.ListID, "error", err)
		return nil, fmt.Errorf("create task: %w", err)
	}
	return toTaskResponse(task), nil
}

func (s *taskService) Get(ctx context.Context, actor *auth.Identity, id uint) (*TaskResponse, error) {
	task, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func (s *taskService) Update(ctx context.Context, actor *auth.Identity, id uint, req UpdateTaskRequest) (*TaskResponse, error) {
	task, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != "" {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Done != nil {
		task.Done = *req.Done
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return toTaskResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, actor *auth.Identity, id uint) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// authorize resolves task -> list -> team and applies the policy. For
// non-admins every failure along that chain, including a missing task or
// list, comes back as ErrForbidden so the response does not reveal whether
// the resource exists.
func (s *taskService) authorize(ctx context.Context, actor *auth.Identity, id uint) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) && !actor.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}

	list, err := s.loadList(ctx, task.ListID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanAccessTasksOf(actor, list); err != nil {
		return nil, err
	}
	return task, nil
}

// loadList fetches a list, mapping "not found" to a nil list so the policy
// decides who gets to learn about the miss.
func (s *taskService) loadList(ctx context.Context, id uint) (*domain.TodoList, error) {
	list, err := s.lists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load list: %w", err)
	}
	return list, nil
}
