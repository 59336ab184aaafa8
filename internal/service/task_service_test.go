package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

type taskFixture struct {
	lists *fakeListRepo
	tasks *fakeTaskRepo
	svc   TaskService

	teamFiveList uint
	teamSixList  uint
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	ctx := context.Background()

	lists := newFakeListRepo()
	tasks := newFakeTaskRepo(lists)

	five := &domain.TodoList{Title: "five", TeamID: uintPtr(5)}
	require.NoError(t, lists.Create(ctx, five))
	six := &domain.TodoList{Title: "six", TeamID: uintPtr(6)}
	require.NoError(t, lists.Create(ctx, six))

	return &taskFixture{
		lists:        lists,
		tasks:        tasks,
		svc:          NewTaskService(tasks, lists, testLogger()),
		teamFiveList: five.ID,
		teamSixList:  six.ID,
	}
}

func TestTaskCreateInOwnTeam(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.svc.Create(ctx, userIdentity(1, "u1@x.com", uintPtr(5)), CreateTaskRequest{
		Title:  "buy milk",
		ListID: f.teamFiveList,
	})
	require.NoError(t, err)
	require.False(t, task.Done)
	require.Equal(t, f.teamFiveList, task.ListID)
}

func TestTaskCreateForeignTeamForbidden(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	_, err := f.svc.Create(ctx, userIdentity(1, "u1@x.com", uintPtr(5)), CreateTaskRequest{
		Title:  "sneaky",
		ListID: f.teamSixList,
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskCreateMissingList(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	// Non-admin: the existence check and the team check share one failure
	// path, so a missing list is indistinguishable from a foreign one.
	_, err := f.svc.Create(ctx, userIdentity(1, "u1@x.com", uintPtr(5)), CreateTaskRequest{Title: "x", ListID: 999})
	require.ErrorIs(t, err, domain.ErrForbidden)

	// Admin: plain NotFound.
	_, err = f.svc.Create(ctx, adminIdentity(2), CreateTaskRequest{Title: "x", ListID: 999})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskListScoping(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	for _, task := range []domain.Task{
		{Title: "a", ListID: f.teamFiveList},
		{Title: "b", ListID: f.teamFiveList},
		{Title: "c", ListID: f.teamSixList},
	} {
		task := task
		require.NoError(t, f.tasks.Create(ctx, &task))
	}

	mine, err := f.svc.List(ctx, userIdentity(1, "u1@x.com", uintPtr(5)))
	require.NoError(t, err)
	require.Len(t, mine, 2)

	all, err := f.svc.List(ctx, adminIdentity(2))
	require.NoError(t, err)
	require.Len(t, all, 3)

	none, err := f.svc.List(ctx, userIdentity(3, "u3@x.com", nil))
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestTaskGetTransitiveAuthorization(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task := &domain.Task{Title: "a", ListID: f.teamFiveList}
	require.NoError(t, f.tasks.Create(ctx, task))

	got, err := f.svc.Get(ctx, userIdentity(1, "u1@x.com", uintPtr(5)), task.ID)
	require.NoError(t, err)
	require.Equal(t, "a", got.Title)

	_, err = f.svc.Get(ctx, userIdentity(2, "u2@x.com", uintPtr(6)), task.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.Get(ctx, adminIdentity(3), task.ID)
	require.NoError(t, err)
}

func TestTaskGetMissing(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	_, err := f.svc.Get(ctx, userIdentity(1, "u1@x.com", uintPtr(5)), 999)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.Get(ctx, adminIdentity(2), 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskUpdateDoneToggle(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)
	actor := userIdentity(1, "u1@x.com", uintPtr(5))

	task := &domain.Task{Title: "a", ListID: f.teamFiveList}
	require.NoError(t, f.tasks.Create(ctx, task))

	done := true
	updated, err := f.svc.Update(ctx, actor, task.ID, UpdateTaskRequest{Done: &done})
	require.NoError(t, err)
	require.True(t, updated.Done)

	// Pointer fields distinguish omitted from zero: done can go back to false.
	done = false
	updated, err = f.svc.Update(ctx, actor, task.ID, UpdateTaskRequest{Done: &done})
	require.NoError(t, err)
	require.False(t, updated.Done)
	require.Equal(t, "a", updated.Title)
}

func TestTaskUpdateForeignTeamForbidden(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task := &domain.Task{Title: "a", ListID: f.teamSixList}
	require.NoError(t, f.tasks.Create(ctx, task))

	title := "hijacked"
	_, err := f.svc.Update(ctx, userIdentity(1, "u1@x.com", uintPtr(5)), task.ID, UpdateTaskRequest{Title: &title})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskDelete(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)
	actor := userIdentity(1, "u1@x.com", uintPtr(5))

	task := &domain.Task{Title: "a", ListID: f.teamFiveList}
	require.NoError(t, f.tasks.Create(ctx, task))

	require.NoError(t, f.svc.Delete(ctx, actor, task.ID))

	_, err := f.svc.Get(ctx, adminIdentity(2), task.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskCreateInvalid(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	_, err := f.svc.Create(ctx, adminIdentity(1), CreateTaskRequest{ListID: f.teamFiveList})
	require.ErrorIs(t, err, domain.ErrInvalid)

	_, err = f.svc.Create(ctx, adminIdentity(1), CreateTaskRequest{Title: "x"})
	require.ErrorIs(t, err, domain.ErrInvalid)
}
