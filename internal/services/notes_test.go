package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musagunn/pomotimer/internal/adapters/storage"
	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/testutil"
)

func newNoteFixture() *NoteService {
	clock := &testutil.FixedClock{Current: at(2024, time.June, 3, 9)}
	return NewNoteService(storage.NewNoteStore(storage.NewMemoryStore()), clock)
}

func TestNoteSave_NewNotePrepended(t *testing.T) {
	service := newNoteFixture()
	ctx := context.Background()

	first, err := service.Save(ctx, domain.Note{Content: "one", Title: "first"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "2024-06-03", first.Date)

	second, err := service.Save(ctx, domain.Note{Content: "two", ID: "n2", Title: "second"})
	require.NoError(t, err)

	notes := service.List(ctx)
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID, "newest note comes first")
	assert.Equal(t, first.ID, notes[1].ID)
}

func TestNoteSave_UpsertReplacesInPlace(t *testing.T) {
	service := newNoteFixture()
	ctx := context.Background()

	_, err := service.Save(ctx, domain.Note{Content: "one", Date: "2024-06-01", ID: "n1", Title: "first"})
	require.NoError(t, err)
	_, err = service.Save(ctx, domain.Note{Content: "two", Date: "2024-06-02", ID: "n2", Title: "second"})
	require.NoError(t, err)

	_, err = service.Save(ctx, domain.Note{Content: "edited", Date: "2024-06-01", ID: "n1", Title: "first v2"})
	require.NoError(t, err)

	notes := service.List(ctx)
	require.Len(t, notes, 2)
	// Position preserved, content replaced
	assert.Equal(t, "n2", notes[0].ID)
	assert.Equal(t, "n1", notes[1].ID)
	assert.Equal(t, "first v2", notes[1].Title)
	assert.Equal(t, "edited", notes[1].Content)
}

func TestNoteSave_LinksSession(t *testing.T) {
	service := newNoteFixture()
	ctx := context.Background()

	note, err := service.Save(ctx, domain.Note{Content: "during focus", Session: "sess_1", Title: "idea"})
	require.NoError(t, err)
	assert.Equal(t, "sess_1", note.Session)
}

func TestNoteDelete(t *testing.T) {
	service := newNoteFixture()
	ctx := context.Background()

	_, err := service.Save(ctx, domain.Note{ID: "n1", Title: "first"})
	require.NoError(t, err)
	_, err = service.Save(ctx, domain.Note{ID: "n2", Title: "second"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, "n1"))

	notes := service.List(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, "n2", notes[0].ID)

	// Deleting a missing id is still success
	assert.NoError(t, service.Delete(ctx, "gone"))
}

func TestNoteClear(t *testing.T) {
	service := newNoteFixture()
	ctx := context.Background()

	_, err := service.Save(ctx, domain.Note{ID: "n1", Title: "first"})
	require.NoError(t, err)

	require.NoError(t, service.Clear(ctx))
	assert.Empty(t, service.List(ctx))
}

func TestNoteList_ReadFailureDegradesToEmpty(t *testing.T) {
	clock := &testutil.FixedClock{Current: at(2024, time.June, 3, 9)}
	service := NewNoteService(storage.NewNoteStore(testutil.NewFailingStore()), clock)

	assert.Empty(t, service.List(context.Background()))
}
