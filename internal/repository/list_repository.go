package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

// ListRepository defines the interface for todo-list data operations.
type ListRepository interface {
	Create(ctx context.Context, list *domain.TodoList) error
	FindByID(ctx context.Context, id uint) (*domain.TodoList, error)
	GetAll(ctx context.Context) ([]domain.TodoList, error)
	FindByTeam(ctx context.Context, teamID uint) ([]domain.TodoList, error)
}

type gormListRepository struct {
	db *gorm.DB
}

// NewGormListRepository creates a new GORM todo-list repository.
func NewGormListRepository(db *gorm.DB) ListRepository {
	return &gormListRepository{db: db}
}

func (r *gormListRepository) Create(ctx context.Context, list *domain.TodoList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *gormListRepository) FindByID(ctx context.Context, id uint) (*domain.TodoList, error) {
	var list domain.TodoList
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &list, nil
}

func (r *gormListRepository) GetAll(ctx context.Context) ([]domain.TodoList, error) {
	var lists []domain.TodoList
	if err := r.db.WithContext(ctx).Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *gormListRepository) FindByTeam(ctx context.Context, teamID uint) ([]domain.TodoList, error) {
	var lists []domain.TodoList
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}
