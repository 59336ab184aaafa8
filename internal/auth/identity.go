package auth

import (
	"context"
	"errors"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

// Identity is the resolved acting user of a request. The role and team come
// from the database at resolution time, not from the token, so revoked
// privileges take effect on the next request.
type Identity struct {
	UserID uint
	Email  string
	Role   domain.Role
	TeamID *uint
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// UserFinder is the slice of the user repository the resolver needs.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*domain.User, error)
}

// Resolver turns a bearer token into an Identity backed by a live user row.
type Resolver struct {
	tokens *TokenService
	users  UserFinder
}

func NewResolver(tokens *TokenService, users UserFinder) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve validates the token and loads its subject. A token whose subject
// was deleted after issuance fails with ErrUserNotFound, not
// ErrInvalidToken, so clients can tell "re-login silently" apart from
// "token is garbage".
func (r *Resolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	claims, err := r.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := r.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		TeamID: user.TeamID,
	}, nil
}

// RequireAdmin fails with ErrForbidden unless the identity is an admin.
func RequireAdmin(id *Identity) error {
	if !id.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
