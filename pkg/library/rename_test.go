package library

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fossabot/Tsundoku/pkg/io/mocks"
	"github.com/fossabot/Tsundoku/pkg/storage"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/model"
)

func testShow(title string) model.Shows {
	return model.Shows{SearchTitle: title, Season: 1}
}

func testEntry(showID, episode int32) storage.Entry {
	var e storage.Entry
	e.ShowID = showID
	e.Episode = episode
	return e
}

func TestRenderName(t *testing.T) {
	show := testShow("One Piece")

	tests := []struct {
		format string
		want   string
	}{
		{"{n} - {s00e00}", "One Piece - S01E05"},
		{"{n} {s} {e}", "One Piece 1 5"},
		{"{s00} {e00}", "01 05"},
		{"{n} {sxe}", "One Piece 1x05"},
		{"{n} {zzz}", "One Piece {zzz}"},
		{"no placeholders", "no placeholders"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderName(tt.format, show, 5))
		})
	}
}

func TestRenameSameFileSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockfs := mocks.NewMockFileIO(ctrl)
	ctx := context.Background()

	folder := t.TempDir()
	show := testShow("One Piece")
	show.DesiredFolder = &folder

	current := "/downloads/[Group] One Piece - 05.mkv"
	want := filepath.Join(folder, "One Piece - S01E05.mkv")

	mockfs.EXPECT().MkdirAll(folder, gomock.Any()).Return(nil)
	mockfs.EXPECT().IsSameFileSystem(current, folder).Return(true, nil)
	mockfs.EXPECT().Rename(current, want).Return(nil)

	got, err := New(mockfs).Rename(ctx, testEntry(1, 5), show, current)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRenameCrossDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockfs := mocks.NewMockFileIO(ctrl)
	ctx := context.Background()

	folder := "/library/One Piece"
	show := testShow("One Piece")
	show.DesiredFolder = &folder

	current := "/downloads/[Group] One Piece - 05.mkv"
	want := filepath.Join(folder, "One Piece - S01E05.mkv")
	staging := want + ".partial"

	mockfs.EXPECT().MkdirAll(folder, gomock.Any()).Return(nil)
	mockfs.EXPECT().IsSameFileSystem(current, folder).Return(false, nil)
	mockfs.EXPECT().Copy(current, staging).Return(int64(100), nil)
	mockfs.EXPECT().Rename(staging, want).Return(nil)
	mockfs.EXPECT().Remove(current).Return(nil)

	got, err := New(mockfs).Rename(ctx, testEntry(1, 5), show, current)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRenameStaysPutWithoutFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockfs := mocks.NewMockFileIO(ctrl)
	ctx := context.Background()

	show := testShow("One Piece")

	current := "/downloads/[Group] One Piece - 05.mkv"
	want := "/downloads/One Piece - S01E05.mkv"

	mockfs.EXPECT().MkdirAll("/downloads", gomock.Any()).Return(nil)
	mockfs.EXPECT().IsSameFileSystem(current, "/downloads").Return(true, nil)
	mockfs.EXPECT().Rename(current, want).Return(nil)

	got, err := New(mockfs).Rename(ctx, testEntry(1, 5), show, current)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRenameAppliesEpisodeOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockfs := mocks.NewMockFileIO(ctrl)
	ctx := context.Background()

	show := testShow("One Piece")
	show.EpisodeOffset = 1000

	current := "/downloads/One Piece - 05.mkv"
	want := "/downloads/One Piece - S01E1005.mkv"

	mockfs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	mockfs.EXPECT().IsSameFileSystem(gomock.Any(), gomock.Any()).Return(true, nil)
	mockfs.EXPECT().Rename(current, want).Return(nil)

	got, err := New(mockfs).Rename(ctx, testEntry(1, 5), show, current)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRenameNoopWhenAlreadyNamed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockfs := mocks.NewMockFileIO(ctrl)
	ctx := context.Background()

	show := testShow("One Piece")
	current := "/downloads/One Piece - S01E05.mkv"

	got, err := New(mockfs).Rename(ctx, testEntry(1, 5), show, current)
	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestRenameSurfacesRenameError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockfs := mocks.NewMockFileIO(ctrl)
	ctx := context.Background()

	show := testShow("One Piece")
	current := "/downloads/One Piece - 05.mkv"

	mockfs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	mockfs.EXPECT().IsSameFileSystem(gomock.Any(), gomock.Any()).Return(true, nil)
	mockfs.EXPECT().Rename(gomock.Any(), gomock.Any()).Return(errors.New("expected testing error"))

	_, err := New(mockfs).Rename(ctx, testEntry(1, 5), show, current)
	assert.Error(t, err)
}
