package sqlite

import (
	"context"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossabot/Tsundoku/pkg/storage"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/model"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/table"
)

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()

	store, err := New(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Init(context.Background()))

	return store
}

func strPtr(s string) *string { return &s }

func TestShowRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateShow(ctx, model.Shows{
		SearchTitle:   "One Piece",
		DesiredFormat: strPtr("{n} - {s00e00}"),
		Season:        1,
		EpisodeOffset: 0,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	show, err := store.GetShow(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "One Piece", show.SearchTitle)
	require.NotNil(t, show.DesiredFormat)
	assert.Equal(t, "{n} - {s00e00}", *show.DesiredFormat)
	assert.Nil(t, show.DesiredFolder)

	shows, err := store.ListShows(ctx)
	require.NoError(t, err)
	assert.Len(t, shows, 1)

	require.NoError(t, store.DeleteShow(ctx, id))

	_, err = store.GetShow(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetShowNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetShow(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEntryLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	showID, err := store.CreateShow(ctx, model.Shows{SearchTitle: "Naruto", Season: 1})
	require.NoError(t, err)

	entry := storage.Entry{}
	entry.ShowID = int32(showID)
	entry.Episode = 5

	entryID, err := store.CreateEntry(ctx, entry, storage.EntryStatePending)
	require.NoError(t, err)

	got, err := store.GetEntry(ctx, entryID)
	require.NoError(t, err)
	assert.Equal(t, storage.EntryStatePending, got.State())
	assert.Empty(t, got.TorrentHash)

	require.NoError(t, store.UpdateEntryTorrentHash(ctx, entryID, "abc123"))
	require.NoError(t, store.UpdateEntryState(ctx, entryID, storage.EntryStateDownloading))

	downloading, err := store.ListEntriesByState(ctx, storage.EntryStateDownloading)
	require.NoError(t, err)
	require.Len(t, downloading, 1)
	assert.Equal(t, "abc123", downloading[0].TorrentHash)

	require.NoError(t, store.UpdateEntryFilePath(ctx, entryID, "/library/Naruto - S01E05.mkv"))
	require.NoError(t, store.UpdateEntryState(ctx, entryID, storage.EntryStateCompleted))

	got, err = store.GetEntry(ctx, entryID)
	require.NoError(t, err)
	assert.Equal(t, storage.EntryStateCompleted, got.State())
	require.NotNil(t, got.FilePath)
	assert.Equal(t, "/library/Naruto - S01E05.mkv", *got.FilePath)
}

func TestUpdateEntryStateRejectsInvalidTransition(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	showID, err := store.CreateShow(ctx, model.Shows{SearchTitle: "Bleach", Season: 1})
	require.NoError(t, err)

	entry := storage.Entry{}
	entry.ShowID = int32(showID)
	entry.Episode = 1

	entryID, err := store.CreateEntry(ctx, entry, storage.EntryStatePending)
	require.NoError(t, err)

	// pending cannot jump straight to completed
	err = store.UpdateEntryState(ctx, entryID, storage.EntryStateCompleted)
	assert.Error(t, err)

	got, err := store.GetEntry(ctx, entryID)
	require.NoError(t, err)
	assert.Equal(t, storage.EntryStatePending, got.State())
}

func TestListEntriesWithConditions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	showID, err := store.CreateShow(ctx, model.Shows{SearchTitle: "Gintama", Season: 1})
	require.NoError(t, err)

	for _, ep := range []int32{1, 2, 3} {
		entry := storage.Entry{}
		entry.ShowID = int32(showID)
		entry.Episode = ep
		_, err := store.CreateEntry(ctx, entry, storage.EntryStateDownloading)
		require.NoError(t, err)
	}

	entries, err := store.ListEntries(ctx,
		table.ShowEntry.ShowID.EQ(sqlite.Int64(showID)),
		table.ShowEntry.Episode.EQ(sqlite.Int32(2)),
	)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int32(2), entries[0].Episode)

	all, err := store.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
