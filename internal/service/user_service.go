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

// UserResponse is the representation of a user returned by the service.
// The password hash never leaves the service layer.
type UserResponse struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	TeamID    *uint       `json:"team_id"`
	CreatedAt string      `json:"created_at"`
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		TeamID:    u.TeamID,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// CreateUserRequest holds the data for an admin-created user.
type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	TeamID   *uint       `json:"team_id"`
}

// UpdateUserRequest holds the admin-editable fields. Pointer fields
// distinguish "omitted" from "set to zero value".
type UpdateUserRequest struct {
	Name   *string      `json:"name"`
	Email  *string      `json:"email"`
	Role   *domain.Role `json:"role"`
	TeamID *uint        `json:"team_id"`
}

// UpdateMeRequest holds the self-service profile fields. A password change
// requires the current password.
type UpdateMeRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
}

// UserService defines the operations for managing users. Everything except
// Me and UpdateMe is admin-only.
type UserService interface {
	Me(ctx context.Context, actor *auth.Identity) (*UserResponse, error)
	UpdateMe(ctx context.Context, actor *auth.Identity, req UpdateMeRequest) (*UserResponse, error)
	List(ctx context.Context, actor *auth.Identity) ([]UserResponse, error)
	Create(ctx context.Context, actor *auth.Identity, req CreateUserRequest) (*UserResponse, error)
	Update(ctx context.Context, actor *auth.Identity, id uint, req UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, actor *auth.Identity, id uint) error
}

type userService struct {
	users      repository.UserRepository
	bcryptCost int
	log        *zap.SugaredLogger
}

// NewUserService creates a new instance of userService.
func NewUserService(users repository.UserRepository, bcryptCost int, log *zap.SugaredLogger) UserService {
	return &userService{users: users, bcryptCost: bcryptCost, log: log}
}

func (s *userService) Me(ctx context.Context, actor *auth.Identity) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateMe(ctx context.Context, actor *auth.Identity, req UpdateMeRequest) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: malformed email", domain.ErrInvalid)
		}
		if email != user.Email {
			if err := s.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.NewPassword != nil {
		if req.CurrentPassword == nil || !auth.VerifyPassword(*req.CurrentPassword, user.PasswordHash) {
			return nil, fmt.Errorf("%w: current password does not match", domain.ErrForbidden)
		}
		hash, err := auth.HashPassword(*req.NewPassword, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *userService) List(ctx context.Context, actor *auth.Identity) ([]UserResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *userService) Create(ctx context.Context, actor *auth.Identity, req CreateUserRequest) (*UserResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Password == "" || !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrInvalid)
	}
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalid, req.Role)
	}
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		TeamID:       req.TeamID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.log.Errorw("create user", "email", req.Email, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, actor *auth.Identity, id uint, req UpdateUserRequest) (*UserResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: malformed email", domain.ErrInvalid)
		}
		if email != user.Email {
			if err := s.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalid, *req.Role)
		}
		user.Role = *req.Role
	}
	if req.TeamID != nil {
		user.TeamID = req.TeamID
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, actor *auth.Identity, id uint) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Infow("user deleted", "user_id", id, "by", actor.UserID)
	return nil
}

func (s *userService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}
