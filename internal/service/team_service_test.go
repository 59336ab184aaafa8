package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

func TestTeamCreateOpenToAnyUser(t *testing.T) {
	ctx := context.Background()
	svc := NewTeamService(newFakeTeamRepo(), testLogger())

	// Team creation is not gated on role or membership.
	team, err := svc.Create(ctx, userIdentity(1, "u1@x.com", nil), CreateTeamRequest{Name: "platform"})
	require.NoError(t, err)
	require.Equal(t, "platform", team.Name)
	require.NotZero(t, team.ID)
}

func TestTeamCreateEmptyName(t *testing.T) {
	ctx := context.Background()
	svc := NewTeamService(newFakeTeamRepo(), testLogger())

	_, err := svc.Create(ctx, userIdentity(1, "u1@x.com", nil), CreateTeamRequest{})
	require.ErrorIs(t, err, domain.ErrInvalid)
}

func TestTeamList(t *testing.T) {
	ctx := context.Background()
	teams := newFakeTeamRepo()
	svc := NewTeamService(teams, testLogger())

	for _, name := range []string{"platform", "frontend"} {
		_, err := svc.Create(ctx, userIdentity(1, "u1@x.com", nil), CreateTeamRequest{Name: name})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, userIdentity(2, "u2@x.com", nil))
	require.NoError(t, err)
	require.Len(t, all, 2)
}
