package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musagunn/pomotimer/internal/adapters/storage"
	"github.com/musagunn/pomotimer/internal/testutil"
)

func newStreakFixture(start time.Time) (*StreakService, *testutil.FixedClock) {
	clock := &testutil.FixedClock{Current: start}
	repo := storage.NewStreakStore(storage.NewMemoryStore())
	return NewStreakService(repo, clock), clock
}

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func TestStreak_FirstFocusSessionStartsStreak(t *testing.T) {
	service, _ := newStreakFixture(at(2024, time.June, 3, 9))
	ctx := context.Background()

	state, err := service.RecordFocusCompletion(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 1, state.LongestStreak)
}

func TestStreak_SameDayCountsOnce(t *testing.T) {
	service, clock := newStreakFixture(at(2024, time.June, 3, 9))
	ctx := context.Background()

	_, err := service.RecordFocusCompletion(ctx)
	require.NoError(t, err)

	// Three more completions the same day
	for i := 0; i < 3; i++ {
		clock.Advance(2 * time.Hour)
		state, err := service.RecordFocusCompletion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, state.CurrentStreak)
	}

	// Persisted state unchanged as well
	assert.Equal(t, 1, service.Current(ctx).CurrentStreak)
}

func TestStreak_ConsecutiveDaysIncrement(t *testing.T) {
	service, clock := newStreakFixture(at(2024, time.June, 3, 9))
	ctx := context.Background()

	for day := 1; day <= 4; day++ {
		state, err := service.RecordFocusCompletion(ctx)
		require.NoError(t, err)
		assert.Equal(t, day, state.CurrentStreak)
		assert.Equal(t, day, state.LongestStreak)
		clock.Advance(24 * time.Hour)
	}
}

func TestStreak_GapResetsCurrentKeepsLongest(t *testing.T) {
	service, clock := newStreakFixture(at(2024, time.June, 3, 9))
	ctx := context.Background()

	for day := 0; day < 3; day++ {
		_, err := service.RecordFocusCompletion(ctx)
		require.NoError(t, err)
		clock.Advance(24 * time.Hour)
	}

	// Skip four days
	clock.Advance(4 * 24 * time.Hour)
	state, err := service.RecordFocusCompletion(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 3, state.LongestStreak)
}

func TestStreak_PersistsAcrossServiceInstances(t *testing.T) {
	kv := storage.NewMemoryStore()
	clock := &testutil.FixedClock{Current: at(2024, time.June, 3, 9)}
	ctx := context.Background()

	first := NewStreakService(storage.NewStreakStore(kv), clock)
	_, err := first.RecordFocusCompletion(ctx)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	second := NewStreakService(storage.NewStreakStore(kv), clock)
	state, err := second.RecordFocusCompletion(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentStreak)
}

func TestStreak_SaveFailureIsSurfaced(t *testing.T) {
	clock := &testutil.FixedClock{Current: at(2024, time.June, 3, 9)}
	broken := &testutil.FailingStore{FailWrites: true}
	service := NewStreakService(storage.NewStreakStore(broken), clock)

	_, err := service.RecordFocusCompletion(context.Background())
	assert.Error(t, err)
}

func TestStreak_ReadFailureDegradesToZeroState(t *testing.T) {
	clock := &testutil.FixedClock{Current: at(2024, time.June, 3, 9)}
	broken := testutil.NewFailingStore()
	service := NewStreakService(storage.NewStreakStore(broken), clock)

	state := service.Current(context.Background())
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Nil(t, state.LastSessionDate)
}

func TestStreak_Reset(t *testing.T) {
	service, _ := newStreakFixture(at(2024, time.June, 3, 9))
	ctx := context.Background()

	_, err := service.RecordFocusCompletion(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Reset(ctx))

	state := service.Current(ctx)
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 0, state.LongestStreak)
	assert.Nil(t, state.LastSessionDate)
}
