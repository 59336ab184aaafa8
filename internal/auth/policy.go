package auth

import (
	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

// Authorization policy. Pure decision functions over (identity, resource):
// no persistence access happens here, callers load whatever rows the
// decision needs and pass them in.
//
// The central invariant: non-admins may only observe or mutate resources
// scoped to their own team; admins bypass team scoping entirely.

// Scope describes which team-scoped rows an identity may read.
// All trumps TeamID; when both All is false and TeamID is nil the caller
// must return an empty result set, not an error.
type Scope struct {
	All    bool
	TeamID *uint
}

// Empty reports whether the scope matches no rows at all.
func (s Scope) Empty() bool {
	return !s.All && s.TeamID == nil
}

// ScopeFor computes the read scope for team-scoped list/task queries.
func ScopeFor(actor *Identity) Scope {
	if actor.IsAdmin() {
		return Scope{All: true}
	}
	return Scope{TeamID: actor.TeamID}
}

// CanCreateList decides list creation: admins may target any team, others
// must target exactly their own.
func CanCreateList(actor *Identity, teamID *uint) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.TeamID == nil || teamID == nil || *teamID != *actor.TeamID {
		return domain.ErrForbidden
	}
	return nil
}

// CanAccessTasksOf decides task operations, which derive their authorization
// transitively from the task's list. list is nil when the lookup missed:
// admins then get ErrNotFound, non-admins get ErrForbidden so that the
// response does not reveal whether the list exists.
func CanAccessTasksOf(actor *Identity, list *domain.TodoList) error {
	if actor.IsAdmin() {
		if list == nil {
			return domain.ErrNotFound
		}
		return nil
	}
	if list == nil || list.TeamID == nil || actor.TeamID == nil || *list.TeamID != *actor.TeamID {
		return domain.ErrForbidden
	}
	return nil
}

// CanSendInvite requires the sender to belong to the team it is inviting
// into. There is deliberately no admin bypass: an invite is a membership
// action, not a scoping query.
func CanSendInvite(actor *Identity, teamID uint) error {
	if actor.TeamID == nil || *actor.TeamID != teamID {
		return domain.ErrForbidden
	}
	return nil
}

// CanResolveInvite requires the acting user to be the invitee.
func CanResolveInvite(actor *Identity, invite *domain.Invite) error {
	if invite.Email != actor.Email {
		return domain.ErrForbidden
	}
	return nil
}
