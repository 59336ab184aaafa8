package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/teamtodo/teamtodo-backend/internal/auth"
	"github.com/teamtodo/teamtodo-backend/internal/domain"
	"github.com/teamtodo/teamtodo-backend/internal/repository"
)

// ListResponse is the representation of a todo list returned by the service.
type ListResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	TeamID    *uint  `json:"team_id"`
	OwnerID   *uint  `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}

func toListResponse(l *domain.TodoList) *ListResponse {
	return &ListResponse{
		ID:        l.ID,
		Title:     l.Title,
		TeamID:    l.TeamID,
		OwnerID:   l.OwnerID,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

// CreateListRequest holds the data needed to create a todo list. A non-admin
// that omits team_id gets their own team; a non-admin that names another
// team is rejected.
type CreateListRequest struct {
	Title  string `json:"title"`
	TeamID *uint  `json:"team_id"`
}

// ListService defines the operations for managing todo lists.
type ListService interface {
	// List returns the lists visible to the actor: everything for admins,
	// the actor's team for members, nothing for users without a team.
	List(ctx context.Context, actor *auth.Identity) ([]ListResponse, error)

	Create(ctx context.Context, actor *auth.Identity, req CreateListRequest) (*ListResponse, error)
}

type listService struct {
	lists repository.ListRepository
	log   *zap.SugaredLogger
}

// NewListService creates a new instance of listService.
func NewListService(lists repository.ListRepository, log *zap.SugaredLogger) ListService {
	return &listService{lists: lists, log: log}
}

func (s *listService) List(ctx context.Context, actor *auth.Identity) ([]ListResponse, error) {
	scope := auth.ScopeFor(actor)

	var (
		lists []domain.TodoList
		err   error
	)
	switch {
	case scope.All:
		lists, err = s.lists.GetAll(ctx)
	case scope.Empty():
		return []ListResponse{}, nil
	default:
		lists, err = s.lists.FindByTeam(ctx, *scope.TeamID)
	}
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	out := make([]ListResponse, 0, len(lists))
	for i := range lists {
		out = append(out, *toListResponse(&lists[i]))
	}
	return out, nil
}

func (s *listService) Create(ctx context.Context, actor *auth.Identity, req CreateListRequest) (*ListResponse, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalid)
	}

	teamID := req.TeamID
	if teamID == nil && !actor.IsAdmin() {
		teamID = actor.TeamID
	}
	if err := auth.CanCreateList(actor, teamID); err != nil {
		return nil, err
	}

	ownerID := actor.UserID
	list := &domain.TodoList{
		Title:   req.Title,
		TeamID:  teamID,
		OwnerID: &ownerID,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		s.log.Errorw("create list", "error", err)
		return nil, fmt.Errorf("create list: %w", err)
	}
	return toListResponse(list), nil
}
