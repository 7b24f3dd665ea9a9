package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musagunn/pomotimer/internal/domain"
)

func TestStreakStore_LoadDefaultState(t *testing.T) {
	store := NewStreakStore(NewMemoryStore())

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 0, state.LongestStreak)
	assert.Nil(t, state.LastSessionDate)
}

func TestStreakStore_RoundTrip(t *testing.T) {
	store := NewStreakStore(NewMemoryStore())
	ctx := context.Background()

	last := time.Date(2024, time.June, 3, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, domain.StreakState{
		CurrentStreak:   3,
		LastSessionDate: &last,
		LongestStreak:   8,
	}))

	state, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.CurrentStreak)
	assert.Equal(t, 8, state.LongestStreak)
	require.NotNil(t, state.LastSessionDate)
	assert.True(t, last.Equal(*state.LastSessionDate))
}

func TestTaskStore_ListReportsUnseeded(t *testing.T) {
	store := NewTaskStore(NewMemoryStore())

	tasks, seeded, err := store.List(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Nil(t, tasks)
}

func TestTaskStore_SaveThenList(t *testing.T) {
	store := NewTaskStore(NewMemoryStore())
	ctx := context.Background()

	saved := []domain.Task{
		{Color: "#FF6B6B", ID: "1", Icon: "📚", Name: "Studying"},
		{Color: "#4ECDC4", ID: "2", Icon: "💻", Name: "Coding"},
	}
	require.NoError(t, store.Save(ctx, saved))

	tasks, seeded, err := store.List(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, saved, tasks)
}

func TestTaskStore_SavedEmptyListIsStillSeeded(t *testing.T) {
	store := NewTaskStore(NewMemoryStore())
	ctx := context.Background()

	// Deleting every task must not re-trigger default seeding
	require.NoError(t, store.Save(ctx, []domain.Task{}))

	tasks, seeded, err := store.List(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Empty(t, tasks)
}

func TestNoteStore_RoundTrip(t *testing.T) {
	store := NewNoteStore(NewMemoryStore())
	ctx := context.Background()

	notes := []domain.Note{
		{Content: "body", Date: "2024-06-03", ID: "n1", Title: "first"},
	}
	require.NoError(t, store.Save(ctx, notes))

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes, got)

	require.NoError(t, store.Clear(ctx))
	got, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
