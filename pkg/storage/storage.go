package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/fossabot/Tsundoku/pkg/machine"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/model"
)

//go:generate mockgen -package mocks -destination mocks/mock_storage.go github.com/fossabot/Tsundoku/pkg/storage Storage

var ErrNotFound = errors.New("not found in storage")

// EntryState is the lifecycle state of a tracked show entry.
//
// pending is the provisional state persisted before the torrent client accepts
// the submission, so a crash between the two steps is recoverable on restart.
type EntryState string

const (
	EntryStatePending     EntryState = "pending"
	EntryStateDownloading EntryState = "downloading"
	EntryStateCompleted   EntryState = "completed"
	EntryStateFailed      EntryState = "failed"
)

// Entry is one tracked episode acquisition
type Entry struct {
	model.ShowEntry
}

func (e Entry) State() EntryState {
	return EntryState(e.CurrentState)
}

// Machine returns the allowed transitions out of the entry's current state
func (e Entry) Machine() *machine.StateMachine[EntryState] {
	return machine.New(e.State(),
		machine.From(EntryStatePending).To(EntryStateDownloading, EntryStateFailed),
		machine.From(EntryStateDownloading).To(EntryStateCompleted, EntryStateFailed),
	)
}

type Storage interface {
	Init(ctx context.Context) error
	ShowStorage
	EntryStorage
}

type ShowStorage interface {
	CreateShow(ctx context.Context, show model.Shows) (int64, error)
	GetShow(ctx context.Context, id int64) (*model.Shows, error)
	ListShows(ctx context.Context) ([]*model.Shows, error)
	DeleteShow(ctx context.Context, id int64) error
}

type EntryStorage interface {
	CreateEntry(ctx context.Context, entry Entry, initialState EntryState) (int64, error)
	GetEntry(ctx context.Context, id int64) (*Entry, error)
	ListEntries(ctx context.Context, where ...sqlite.BoolExpression) ([]*Entry, error)
	ListEntriesByState(ctx context.Context, state EntryState) ([]*Entry, error)
	UpdateEntryState(ctx context.Context, id int64, state EntryState) error
	UpdateEntryTorrentHash(ctx context.Context, id int64, hash string) error
	UpdateEntryFilePath(ctx context.Context, id int64, path string) error
}
