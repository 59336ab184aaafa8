package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

// TokenService issues and validates signed, self-contained bearer tokens.
// Tokens are stateless: there is no revocation list, the only way out is
// expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// TokenClaims is what a validated token asserts about its bearer.
type TokenClaims struct {
	UserID uint
	Role   domain.Role
}

type jwtClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenService creates a token service signing with secret. ttl is the
// lifetime of issued tokens; zero means 60 minutes.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for userID carrying its role and an absolute expiry.
func (t *TokenService) Issue(userID uint, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks signature and expiry and extracts the claims. Every
// failure mode, whether bad signature, wrong algorithm, malformed structure,
// expired or otherwise, collapses into ErrInvalidToken; callers have no reason to
// distinguish them.
func (t *TokenService) Validate(tokenStr string) (*TokenClaims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidToken
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &TokenClaims{UserID: uint(id), Role: role}, nil
}
