package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

// InviteRepository defines the interface for invite data operations.
// Accept and Decline are the state-machine transitions; both are guarded by
// a conditional update on the current status so that concurrent calls for
// the same invite serialize at the database: exactly one wins, the rest
// observe ErrAlreadyProcessed.
type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) error
	FindByID(ctx context.Context, id uint) (*domain.Invite, error)
	FindPending(ctx context.Context, email string, teamID uint) (*domain.Invite, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Invite, error)
	Accept(ctx context.Context, inviteID, userID, teamID uint) error
	Decline(ctx context.Context, inviteID uint) error
}

type gormInviteRepository struct {
	db *gorm.DB
}

// NewGormInviteRepository creates a new GORM invite repository.
func NewGormInviteRepository(db *gorm.DB) InviteRepository {
	return &gormInviteRepository{db: db}
}

func (r *gormInviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *gormInviteRepository) FindByID(ctx context.Context, id uint) (*domain.Invite, error) {
	var invite domain.Invite
	if err := r.db.WithContext(ctx).First(&invite, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &invite, nil
}

// FindPending returns the pending invite for (email, team), or ErrNotFound.
// Terminal invites for the same pair are ignored and do not block a new
// invite.
func (r *gormInviteRepository) FindPending(ctx context.Context, email string, teamID uint) (*domain.Invite, error) {
	var invite domain.Invite
	err := r.db.WithContext(ctx).
		Where("email = ? AND team_id = ? AND status = ?", email, teamID, domain.InvitePending).
		First(&invite).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &invite, nil
}

func (r *gormInviteRepository) ListByEmail(ctx context.Context, email string) ([]domain.Invite, error) {
	var invites []domain.Invite
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// Accept flips the invite to accepted and moves the user onto the invite's
// team in one transaction. The status update is conditional on the invite
// still being pending; losing a race leaves both rows untouched and returns
// ErrAlreadyProcessed.
func (r *gormInviteRepository) Accept(ctx context.Context, inviteID, userID, teamID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Invite{}).
			Where("id = ? AND status = ?", inviteID, domain.InvitePending).
			Update("status", domain.InviteAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyProcessed
		}
		return tx.Model(&domain.User{}).
			Where("id = ?", userID).
			Update("team_id", teamID).Error
	})
}

// Decline flips the invite to declined. No side effect on the user, so a
// single conditional update suffices.
func (r *gormInviteRepository) Decline(ctx context.Context, inviteID uint) error {
	res := r.db.WithContext(ctx).Model(&domain.Invite{}).
		Where("id = ? AND status = ?", inviteID, domain.InvitePending).
		Update("status", domain.InviteDeclined)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}
