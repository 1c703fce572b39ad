// Package manager drives the acquisition pipeline: polling feeds, starting
// downloads, and relocating finished files.
package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/fossabot/Tsundoku/pkg/cache"
	"github.com/fossabot/Tsundoku/pkg/feed"
	"github.com/fossabot/Tsundoku/pkg/io"
	"github.com/fossabot/Tsundoku/pkg/logger"
	"github.com/fossabot/Tsundoku/pkg/storage"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/model"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/table"
	"github.com/fossabot/Tsundoku/pkg/torrent"
)

// ErrEntryExists is returned when an acquisition for the same show and
// episode is already tracked in a non-failed state.
var ErrEntryExists = errors.New("entry already exists for this episode")

// Renamer relocates a finished download and returns its new path.
type Renamer interface {
	Rename(ctx context.Context, entry storage.Entry, show model.Shows, currentPath string) (string, error)
}

type Manager struct {
	storage storage.Storage
	client  torrent.Client
	fetcher feed.Fetcher
	parsers []feed.Parser
	renamer Renamer
	fileIO  io.FileIO
	seen    *cache.Cache[string, struct{}]
}

func New(store storage.Storage, client torrent.Client, fetcher feed.Fetcher, parsers []feed.Parser, renamer Renamer, fileIO io.FileIO) *Manager {
	return &Manager{
		storage: store,
		client:  client,
		fetcher: fetcher,
		parsers: parsers,
		renamer: renamer,
		fileIO:  fileIO,
		seen:    cache.New[string, struct{}](),
	}
}

// BeginAcquisition starts tracking a download for a show's episode. The entry
// is persisted before the torrent client is involved, so an interrupted
// submission leaves a pending row behind instead of losing the episode.
func (m *Manager) BeginAcquisition(ctx context.Context, showID int64, episode int32, link string) (int64, error) {
	log := logger.FromCtx(ctx, "show", showID, "episode", episode)

	show, err := m.storage.GetShow(ctx, showID)
	if err != nil {
		return 0, fmt.Errorf("loading show: %w", err)
	}

	existing, err := m.storage.ListEntries(ctx,
		table.ShowEntry.ShowID.EQ(sqlite.Int64(showID)),
		table.ShowEntry.Episode.EQ(sqlite.Int32(episode)),
		table.ShowEntry.CurrentState.NOT_EQ(sqlite.String(string(storage.EntryStateFailed))),
	)
	if err != nil {
		return 0, fmt.Errorf("checking for existing entry: %w", err)
	}
	if len(existing) != 0 {
		return 0, ErrEntryExists
	}

	entry := storage.Entry{}
	entry.ShowID = show.ID
	entry.Episode = episode

	entryID, err := m.storage.CreateEntry(ctx, entry, storage.EntryStatePending)
	if err != nil {
		return 0, fmt.Errorf("creating entry: %w", err)
	}

	hash, err := m.client.Add(ctx, link)
	if err != nil {
		log.Errorw("torrent submission failed", "error", err)
		if serr := m.storage.UpdateEntryState(ctx, entryID, storage.EntryStateFailed); serr != nil {
			log.Errorw("failed to mark entry failed", "entry", entryID, "error", serr)
		}
		return 0, fmt.Errorf("submitting torrent: %w", err)
	}

	if err := m.storage.UpdateEntryTorrentHash(ctx, entryID, hash); err != nil {
		return 0, fmt.Errorf("storing torrent hash: %w", err)
	}

	if err := m.storage.UpdateEntryState(ctx, entryID, storage.EntryStateDownloading); err != nil {
		return 0, fmt.Errorf("marking entry downloading: %w", err)
	}

	log.Infow("acquisition started", "entry", entryID, "hash", hash)
	return entryID, nil
}

// RecoverPending fails entries left pending by an interrupted submission.
// Called once at startup; the poller will pick the episodes up again.
func (m *Manager) RecoverPending(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	pending, err := m.storage.ListEntriesByState(ctx, storage.EntryStatePending)
	if err != nil {
		return fmt.Errorf("listing pending entries: %w", err)
	}

	for _, entry := range pending {
		if err := m.storage.UpdateEntryState(ctx, int64(entry.ID), storage.EntryStateFailed); err != nil {
			log.Errorw("failed to recover pending entry", "entry", entry.ID, "error", err)
			continue
		}
		log.Warnw("failed entry left pending by previous run", "entry", entry.ID, "show", entry.ShowID, "episode", entry.Episode)
	}

	return nil
}
