// Package service contains the business logic. Every operation takes the
// resolved identity of the caller (where one is required) and applies the
// authorization policy before touching persisted state.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teamtodo/teamtodo-backend/internal/auth"
	"github.com/teamtodo/teamtodo-backend/internal/domain"
	"github.com/teamtodo/teamtodo-backend/internal/repository"
)

// RegisterRequest holds the data needed to create an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the token payload returned to a successfully logged-in
// client.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService handles registration and login.
type AuthService interface {
	// Register creates a new user with role user and no team.
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)

	// Login verifies email+password and issues a bearer token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authService struct {
	users      repository.UserRepository
	tokens     *auth.TokenService
	bcryptCost int
	log        *zap.SugaredLogger
}

// NewAuthService creates a new instance of authService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, bcryptCost int, log *zap.SugaredLogger) AuthService {
	return &authService{users: users, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Password == "" || !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrInvalid)
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.log.Errorw("create user", "email", req.Email, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Infow("user registered", "user_id", user.ID)
	return toUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{AccessToken: token, TokenType: "bearer"}, nil
}
