package service

import (
	"go.uber.org/zap"

	"github.com/teamtodo/teamtodo-backend/internal/auth"
	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func uintPtr(v uint) *uint { return &v }

func userIdentity(id uint, email string, teamID *uint) *auth.Identity {
	return &auth.Identity{UserID: id, Email: email, Role: domain.RoleUser, TeamID: teamID}
}

func adminIdentity(id uint) *auth.Identity {
	return &auth.Identity{UserID: id, Email: "admin@x.com", Role: domain.RoleAdmin}
}
