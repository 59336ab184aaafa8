package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	FindByID(ctx context.Context, id uint) (*domain.Team, error)
	GetAll(ctx context.Context) ([]domain.Team, error)
}

type gormTeamRepository struct {
	db *gorm.DB
}

// NewGormTeamRepository creates a new GORM team repository.
func NewGormTeamRepository(db *gorm.DB) TeamRepository {
	return &gormTeamRepository{db: db}
}

func (r *gormTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *gormTeamRepository) FindByID(ctx context.Context, id uint) (*domain.Team, error) {
	var team domain.Team
	if err := r.db.WithContext(ctx).First(&team, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &team, nil
}

func (r *gormTeamRepository) GetAll(ctx context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	if err := r.db.WithContext(ctx).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
