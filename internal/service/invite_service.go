package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teamtodo/teamtodo-backend/internal/auth"
	"github.com/teamtodo/teamtodo-backend/internal/domain"
	"github.com/teamtodo/teamtodo-backend/internal/repository"
)

// InviteResponse is the representation of an invite returned by the service.
type InviteResponse struct {
	ID        uint                `json:"id"`
	Email     string              `json:"email"`
	TeamID    uint                `json:"team_id"`
	InviterID uint                `json:"inviter_id"`
	Status    domain.InviteStatus `json:"status"`
	CreatedAt string              `json:"created_at"`
}

func toInviteResponse(i *domain.Invite) *InviteResponse {
	return &InviteResponse{
		ID:        i.ID,
		Email:     i.Email,
		TeamID:    i.TeamID,
		InviterID: i.InviterID,
		Status:    i.Status,
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}

// SendInviteRequest holds the data needed to invite an email to a team.
type SendInviteRequest struct {
	Email  string `json:"email"`
	TeamID uint   `json:"team_id"`
}

// InviteService runs the invite state machine: pending on creation,
// one-way transitions to accepted or declined.
type InviteService interface {
	// Send creates a pending invite. The sender must belong to the target
	// team and no pending invite may exist for the same (email, team).
	Send(ctx context.Context, actor *auth.Identity, req SendInviteRequest) (*InviteResponse, error)

	// ListMine returns the invites addressed to the actor's email.
	ListMine(ctx context.Context, actor *auth.Identity) ([]InviteResponse, error)

	// Accept moves the invite to accepted and the actor onto the invite's
	// team, atomically.
	Accept(ctx context.Context, actor *auth.Identity, inviteID uint) (*InviteResponse, error)

	// Decline moves the invite to declined. No effect on the actor.
	Decline(ctx context.Context, actor *auth.Identity, inviteID uint) (*InviteResponse, error)
}

type inviteService struct {
	invites repository.InviteRepository
	log     *zap.SugaredLogger
}

// NewInviteService creates a new instance of inviteService.
func NewInviteService(invites repository.InviteRepository, log *zap.SugaredLogger) InviteService {
	return &inviteService{invites: invites, log: log}
}

func (s *inviteService) Send(ctx context.Context, actor *auth.Identity, req SendInviteRequest) (*InviteResponse, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !strings.Contains(req.Email, "@") || req.TeamID == 0 {
		return nil, fmt.Errorf("%w: email and team_id are required", domain.ErrInvalid)
	}

	if err := auth.CanSendInvite(actor, req.TeamID); err != nil {
		return nil, err
	}

	// Only a pending invite blocks a new one; terminal invites for the same
	// pair are history, not a constraint.
	_, err := s.invites.FindPending(ctx, req.Email, req.TeamID)
	if err == nil {
		return nil, fmt.Errorf("%w: invite already pending for %s", domain.ErrConflict, req.Email)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check pending invite: %w", err)
	}

	invite := &domain.Invite{
		Email:     req.Email,
		TeamID:    req.TeamID,
		InviterID: actor.UserID,
		Status:    domain.InvitePending,
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		s.log.Errorw("create invite", "team_id", req.TeamID, "error", err)
		return nil, fmt.Errorf("create invite: %w", err)
	}

	s.log.Infow("invite sent", "invite_id", invite.ID, "team_id", invite.TeamID, "by", actor.UserID)
	return toInviteResponse(invite), nil
}

func (s *inviteService) ListMine(ctx context.Context, actor *auth.Identity) ([]InviteResponse, error) {
	invites, err := s.invites.ListByEmail(ctx, actor.Email)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	out := make([]InviteResponse, 0, len(invites))
	for i := range invites {
		out = append(out, *toInviteResponse(&invites[i]))
	}
	return out, nil
}

func (s *inviteService) Accept(ctx context.Context, actor *auth.Identity, inviteID uint) (*InviteResponse, error) {
	invite, err := s.resolve(ctx, actor, inviteID)
	if err != nil {
		return nil, err
	}

	// The repository re-checks the pending status inside the transaction, so
	// a concurrent accept/decline of the same invite cannot both win.
	if err := s.invites.Accept(ctx, invite.ID, actor.UserID, invite.TeamID); err != nil {
		return nil, err
	}

	s.log.Infow("invite accepted", "invite_id", invite.ID, "user_id", actor.UserID, "team_id", invite.TeamID)
	invite.Status = domain.InviteAccepted
	return toInviteResponse(invite), nil
}

func (s *inviteService) Decline(ctx context.Context, actor *auth.Identity, inviteID uint) (*InviteResponse, error) {
	invite, err := s.resolve(ctx, actor, inviteID)
	if err != nil {
		return nil, err
	}

	if err := s.invites.Decline(ctx, invite.ID); err != nil {
		return nil, err
	}

	s.log.Infow("invite declined", "invite_id", invite.ID, "user_id", actor.UserID)
	invite.Status = domain.InviteDeclined
	return toInviteResponse(invite), nil
}

// resolve loads the invite and checks the shared preconditions for both
// terminal transitions: the actor must be the invitee and the invite must
// still be pending.
func (s *inviteService) resolve(ctx context.Context, actor *auth.Identity, inviteID uint) (*domain.Invite, error) {
	invite, err := s.invites.FindByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanResolveInvite(actor, invite); err != nil {
		return nil, err
	}
	if invite.Status.Terminal() {
		return nil, domain.ErrAlreadyProcessed
	}
	return invite, nil
}
