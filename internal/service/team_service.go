package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/teamtodo/teamtodo-backend/internal/auth"
	"github.com/teamtodo/teamtodo-backend/internal/domain"
	"github.com/teamtodo/teamtodo-backend/internal/repository"
)

// TeamResponse is the representation of a team returned by the service.
type TeamResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toTeamResponse(t *domain.Team) *TeamResponse {
	return &TeamResponse{ID: t.ID, Name: t.Name}
}

// CreateTeamRequest holds the data needed to create a team.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// TeamService defines the operations for managing teams. Team creation is
// open to any authenticated user; deletion is not supported.
type TeamService interface {
	List(ctx context.Context, actor *auth.Identity) ([]TeamResponse, error)
	Create(ctx context.Context, actor *auth.Identity, req CreateTeamRequest) (*TeamResponse, error)
}

type teamService struct {
	teams repository.TeamRepository
	log   *zap.SugaredLogger
}

// NewTeamService creates a new instance of teamService.
func NewTeamService(teams repository.TeamRepository, log *zap.SugaredLogger) TeamService {
	return &teamService{teams: teams, log: log}
}

func (s *teamService) List(ctx context.Context, actor *auth.Identity) ([]TeamResponse, error) {
	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, *toTeamResponse(&teams[i]))
	}
	return out, nil
}

func (s *teamService) Create(ctx context.Context, actor *auth.Identity, req CreateTeamRequest) (*TeamResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalid)
	}
	team := &domain.Team{Name: req.Name}
	if err := s.teams.Create(ctx, team); err != nil {
		s.log.Errorw("create team", "error", err)
		return nil, fmt.Errorf("create team: %w", err)
	}
	s.log.Infow("team created", "team_id", team.ID, "by", actor.UserID)
	return toTeamResponse(team), nil
}
