package service

// In-memory repository fakes. They mirror the GORM implementations'
// semantics, including the conditional status updates that guard the invite
// state machine.

import (
	"context"
	"sync"
	"time"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   uint
	users map[uint]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = r.seq
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeTeamRepo struct {
	mu    sync.Mutex
	seq   uint
	teams map[uint]domain.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[uint]domain.Team)}
}

func (r *fakeTeamRepo) Create(_ context.Context, team *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	team.ID = r.seq
	r.teams[team.ID] = *team
	return nil
}

func (r *fakeTeamRepo) FindByID(_ context.Context, id uint) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTeamRepo) GetAll(_ context.Context) ([]domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	return out, nil
}

type fakeListRepo struct {
	mu    sync.Mutex
	seq   uint
	lists map[uint]domain.TodoList
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: make(map[uint]domain.TodoList)}
}

func (r *fakeListRepo) Create(_ context.Context, list *domain.TodoList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	list.ID = r.seq
	list.CreatedAt = time.Now()
	r.lists[list.ID] = *list
	return nil
}

func (r *fakeListRepo) FindByID(_ context.Context, id uint) (*domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (r *fakeListRepo) GetAll(_ context.Context) ([]domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.TodoList, 0, len(r.lists))
	for _, l := range r.lists {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeListRepo) FindByTeam(_ context.Context, teamID uint) ([]domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TodoList
	for _, l := range r.lists {
		if l.TeamID != nil && *l.TeamID == teamID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	seq   uint
	tasks map[uint]domain.Task
	lists *fakeListRepo
}

func newFakeTaskRepo(lists *fakeListRepo) *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]domain.Task), lists: lists}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	task.ID = r.seq
	task.CreatedAt = time.Now()
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id uint) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) GetAll(_ context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) FindByTeam(ctx context.Context, teamID uint) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Task
	for _, t := range r.tasks {
		list, err := r.lists.FindByID(ctx, t.ListID)
		if err != nil {
			continue
		}
		if list.TeamID != nil && *list.TeamID == teamID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrNotFound
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

type fakeInviteRepo struct {
	mu      sync.Mutex
	seq     uint
	invites map[uint]domain.Invite
	users   *fakeUserRepo
}

func newFakeInviteRepo(users *fakeUserRepo) *fakeInviteRepo {
	return &fakeInviteRepo{invites: make(map[uint]domain.Invite), users: users}
}

func (r *fakeInviteRepo) Create(_ context.Context, invite *domain.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	invite.ID = r.seq
	invite.CreatedAt = time.Now()
	r.invites[invite.ID] = *invite
	return nil
}

func (r *fakeInviteRepo) FindByID(_ context.Context, id uint) (*domain.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.invites[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &i, nil
}

func (r *fakeInviteRepo) FindPending(_ context.Context, email string, teamID uint) (*domain.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.invites {
		if i.Email == email && i.TeamID == teamID && i.Status == domain.InvitePending {
			i := i
			return &i, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeInviteRepo) ListByEmail(_ context.Context, email string) ([]domain.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Invite
	for _, i := range r.invites {
		if i.Email == email {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInviteRepo) Accept(_ context.Context, inviteID, userID, teamID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	invite, ok := r.invites[inviteID]
	if !ok {
		return domain.ErrNotFound
	}
	if invite.Status != domain.InvitePending {
		return domain.ErrAlreadyProcessed
	}

	r.users.mu.Lock()
	defer r.users.mu.Unlock()
	user, ok := r.users.users[userID]
	if !ok {
		return domain.ErrNotFound
	}

	// Both mutations or neither, like the real transaction.
	invite.Status = domain.InviteAccepted
	r.invites[inviteID] = invite
	user.TeamID = &teamID
	r.users.users[userID] = user
	return nil
}

func (r *fakeInviteRepo) Decline(_ context.Context, inviteID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	invite, ok := r.invites[inviteID]
	if !ok {
		return domain.ErrNotFound
	}
	if invite.Status != domain.InvitePending {
		return domain.ErrAlreadyProcessed
	}
	invite.Status = domain.InviteDeclined
	r.invites[inviteID] = invite
	return nil
}
