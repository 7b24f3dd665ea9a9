package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musagunn/pomotimer/internal/adapters/storage"
	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/i18n"
	"github.com/musagunn/pomotimer/internal/testutil"
)

func newTaskFixture() (*TaskService, *testutil.FixedClock) {
	clock := &testutil.FixedClock{Current: at(2024, time.June, 3, 9)}
	return NewTaskService(storage.NewTaskStore(storage.NewMemoryStore()), clock), clock
}

func TestTaskList_SeedsDefaultsOnFirstAccess(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	tasks := service.List(ctx, i18n.LangEnglish)

	require.Len(t, tasks, 6)
	assert.Equal(t, "Studying", tasks[0].Name)

	// Second call returns the persisted set, not a re-seed
	again := service.List(ctx, i18n.LangTurkish)
	assert.Equal(t, tasks, again)
}

func TestTaskCreate(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	task, err := service.Create(ctx, i18n.LangEnglish, "Thesis", "#FF6B6B", "📐")

	require.NoError(t, err)
	assert.Equal(t, "Thesis", task.Name)

	tasks := service.List(ctx, i18n.LangEnglish)
	require.Len(t, tasks, 7)
	assert.Equal(t, "Thesis", tasks[6].Name, "new tasks go at the end of the list")
}

func TestTaskCreate_InvalidName(t *testing.T) {
	service, _ := newTaskFixture()

	_, err := service.Create(context.Background(), i18n.LangEnglish, "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTaskName)
}

func TestTaskDelete(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	before := service.List(ctx, i18n.LangEnglish)
	require.NoError(t, service.Delete(ctx, i18n.LangEnglish, before[0].ID))

	after := service.List(ctx, i18n.LangEnglish)
	assert.Len(t, after, len(before)-1)
	for _, task := range after {
		assert.NotEqual(t, before[0].ID, task.ID)
	}
}

func TestTaskDelete_MissingIDIsNoOpSuccess(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	before := service.List(ctx, i18n.LangEnglish)
	require.NoError(t, service.Delete(ctx, i18n.LangEnglish, "no-such-task"))
	assert.Equal(t, before, service.List(ctx, i18n.LangEnglish))
}

func TestTaskUpdate_MergesFields(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	tasks := service.List(ctx, i18n.LangEnglish)
	target := tasks[1]

	newName := "Go Programming"
	require.NoError(t, service.Update(ctx, i18n.LangEnglish, target.ID, domain.TaskUpdate{Name: &newName}))

	updated, found := service.Get(ctx, i18n.LangEnglish, target.ID)
	require.True(t, found)
	assert.Equal(t, "Go Programming", updated.Name)
	assert.Equal(t, target.Color, updated.Color, "unspecified fields keep their values")
	assert.Equal(t, target.Icon, updated.Icon)
}

func TestTaskUpdate_InvalidNameRejected(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	tasks := service.List(ctx, i18n.LangEnglish)
	tooLong := "0123456789012345678901234567890"
	err := service.Update(ctx, i18n.LangEnglish, tasks[0].ID, domain.TaskUpdate{Name: &tooLong})
	assert.ErrorIs(t, err, domain.ErrInvalidTaskName)
}

func TestTaskUpdate_MissingIDIsNoOpSuccess(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	before := service.List(ctx, i18n.LangEnglish)
	newName := "Whatever"
	require.NoError(t, service.Update(ctx, i18n.LangEnglish, "no-such-task", domain.TaskUpdate{Name: &newName}))
	assert.Equal(t, before, service.List(ctx, i18n.LangEnglish))
}

func TestTaskGet(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	tasks := service.List(ctx, i18n.LangEnglish)
	task, found := service.Get(ctx, i18n.LangEnglish, tasks[2].ID)
	assert.True(t, found)
	assert.Equal(t, tasks[2], task)

	_, found = service.Get(ctx, i18n.LangEnglish, "missing")
	assert.False(t, found)
}

func TestTaskList_ReadFailureFallsBackToDefaults(t *testing.T) {
	clock := &testutil.FixedClock{Current: at(2024, time.June, 3, 9)}
	service := NewTaskService(storage.NewTaskStore(testutil.NewFailingStore()), clock)

	tasks := service.List(context.Background(), i18n.LangEnglish)
	assert.Equal(t, i18n.DefaultTasks(i18n.LangEnglish), tasks)
}

func TestTaskClear_NextListReseeds(t *testing.T) {
	service, _ := newTaskFixture()
	ctx := context.Background()

	_, err := service.Create(ctx, i18n.LangEnglish, "Extra", "", "")
	require.NoError(t, err)

	require.NoError(t, service.Clear(ctx))

	tasks := service.List(ctx, i18n.LangEnglish)
	assert.Len(t, tasks, 6)
}
