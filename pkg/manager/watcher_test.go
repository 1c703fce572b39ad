package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	ioMocks "github.com/fossabot/Tsundoku/pkg/io/mocks"
	storageMocks "github.com/fossabot/Tsundoku/pkg/storage/mocks"
	torrentMocks "github.com/fossabot/Tsundoku/pkg/torrent/mocks"

	"github.com/fossabot/Tsundoku/pkg/storage"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/model"
	"github.com/fossabot/Tsundoku/pkg/torrent"
)

type fakeRenamer struct {
	path   string
	err    error
	called int
}

func (f *fakeRenamer) Rename(_ context.Context, _ storage.Entry, _ model.Shows, _ string) (string, error) {
	f.called++
	return f.path, f.err
}

func downloadingEntry() *storage.Entry {
	e := entryWithState(7, 1, 5, storage.EntryStateDownloading)
	e.TorrentHash = "aa"
	return e
}

func TestCheckDownloadsCompletesFinishedEntry(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	client := torrentMocks.NewMockClient(ctrl)
	fileIO := ioMocks.NewMockFileIO(ctrl)
	renamer := &fakeRenamer{path: "/library/One Piece - S01E05.mkv"}

	store.EXPECT().ListEntriesByState(ctx, storage.EntryStateDownloading).
		Return([]*storage.Entry{downloadingEntry()}, nil)
	client.EXPECT().Get(ctx, "aa").Return(torrent.Status{
		Hash:     "aa",
		Name:     "One Piece - 05.mkv",
		SavePath: "/downloads",
		Size:     734003200,
		Done:     true,
	}, nil)
	fileIO.EXPECT().FileExists("/downloads/One Piece - 05.mkv").Return(true)
	store.EXPECT().GetShow(ctx, int64(1)).Return(testShow(1, "One Piece"), nil)
	store.EXPECT().UpdateEntryFilePath(ctx, int64(7), "/library/One Piece - S01E05.mkv").Return(nil)
	store.EXPECT().UpdateEntryState(ctx, int64(7), storage.EntryStateCompleted).Return(nil)

	m := New(store, client, nil, nil, renamer, fileIO)
	require.NoError(t, m.checkDownloads(ctx))
	assert.Equal(t, 1, renamer.called)
}

func TestCheckDownloadsVanishedTorrentFails(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	client := torrentMocks.NewMockClient(ctrl)

	store.EXPECT().ListEntriesByState(ctx, storage.EntryStateDownloading).
		Return([]*storage.Entry{downloadingEntry()}, nil)
	client.EXPECT().Get(ctx, "aa").Return(torrent.Status{}, torrent.ErrTorrentNotFound)
	store.EXPECT().UpdateEntryState(ctx, int64(7), storage.EntryStateFailed).Return(nil)

	m := New(store, client, nil, nil, nil, nil)
	require.NoError(t, m.checkDownloads(ctx))
}

func TestCheckDownloadsUnfinishedEntryUntouched(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	client := torrentMocks.NewMockClient(ctrl)

	store.EXPECT().ListEntriesByState(ctx, storage.EntryStateDownloading).
		Return([]*storage.Entry{downloadingEntry()}, nil)
	client.EXPECT().Get(ctx, "aa").Return(torrent.Status{Hash: "aa", Progress: 42.0}, nil)

	m := New(store, client, nil, nil, nil, nil)
	require.NoError(t, m.checkDownloads(ctx))
}

func TestCheckDownloadsClientErrorRetriesNextCycle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	client := torrentMocks.NewMockClient(ctrl)

	store.EXPECT().ListEntriesByState(ctx, storage.EntryStateDownloading).
		Return([]*storage.Entry{downloadingEntry()}, nil)
	client.EXPECT().Get(ctx, "aa").Return(torrent.Status{}, errors.New("expected testing error"))

	m := New(store, client, nil, nil, nil, nil)
	require.NoError(t, m.checkDownloads(ctx))
}

func TestCheckDownloadsRenameFailureLeavesDownloading(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	client := torrentMocks.NewMockClient(ctrl)
	fileIO := ioMocks.NewMockFileIO(ctrl)
	renamer := &fakeRenamer{err: errors.New("expected testing error")}

	store.EXPECT().ListEntriesByState(ctx, storage.EntryStateDownloading).
		Return([]*storage.Entry{downloadingEntry()}, nil)
	client.EXPECT().Get(ctx, "aa").Return(torrent.Status{
		Hash:     "aa",
		Name:     "One Piece - 05.mkv",
		SavePath: "/downloads",
		Done:     true,
	}, nil)
	fileIO.EXPECT().FileExists(gomock.Any()).Return(true)
	store.EXPECT().GetShow(ctx, int64(1)).Return(testShow(1, "One Piece"), nil)
	// no state or path updates expected

	m := New(store, client, nil, nil, renamer, fileIO)
	require.NoError(t, m.checkDownloads(ctx))
}

func TestCheckDownloadsFileNotYetPresent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	client := torrentMocks.NewMockClient(ctrl)
	fileIO := ioMocks.NewMockFileIO(ctrl)

	store.EXPECT().ListEntriesByState(ctx, storage.EntryStateDownloading).
		Return([]*storage.Entry{downloadingEntry()}, nil)
	client.EXPECT().Get(ctx, "aa").Return(torrent.Status{
		Hash:     "aa",
		Name:     "One Piece - 05.mkv",
		SavePath: "/downloads",
		Done:     true,
	}, nil)
	fileIO.EXPECT().FileExists("/downloads/One Piece - 05.mkv").Return(false)

	m := New(store, client, nil, nil, nil, fileIO)
	require.NoError(t, m.checkDownloads(ctx))
}
