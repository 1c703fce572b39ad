package manager

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/fossabot/Tsundoku/pkg/logger"
	"github.com/fossabot/Tsundoku/pkg/storage"
	"github.com/fossabot/Tsundoku/pkg/torrent"
)

// DefaultWatchInterval is how often downloading entries are checked.
const DefaultWatchInterval = 15 * time.Second

// WatchDownloads checks downloading entries on the given interval until the
// context is cancelled, renaming finished files into place.
func (m *Manager) WatchDownloads(ctx context.Context, interval time.Duration) {
	log := logger.FromCtx(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := m.checkDownloads(ctx); err != nil {
			log.Errorw("download check failed", "error", err)
		}

		select {
		case <-ctx.Done():
			log.Debug("download watching stopped")
			return
		case <-ticker.C:
		}
	}
}

func (m *Manager) checkDownloads(ctx context.Context) error {
	entries, err := m.storage.ListEntriesByState(ctx, storage.EntryStateDownloading)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		m.checkEntry(ctx, *entry)
	}

	return nil
}

func (m *Manager) checkEntry(ctx context.Context, entry storage.Entry) {
	log := logger.FromCtx(ctx, "entry", entry.ID, "show", entry.ShowID, "episode", entry.Episode)

	status, err := m.client.Get(ctx, entry.TorrentHash)
	if errors.Is(err, torrent.ErrTorrentNotFound) {
		// the torrent was removed behind our back; the entry can never finish
		log.Errorw("torrent vanished from download client", "hash", entry.TorrentHash)
		if serr := m.storage.UpdateEntryState(ctx, int64(entry.ID), storage.EntryStateFailed); serr != nil {
			log.Errorw("failed to mark entry failed", "error", serr)
		}
		return
	}
	if err != nil {
		log.Warnw("download client unreachable", "error", err)
		return
	}

	if !status.Done {
		log.Debugw("still downloading", "progress", status.Progress)
		return
	}

	path := filepath.Join(status.SavePath, status.Name)
	if !m.fileIO.FileExists(path) {
		log.Debugw("download reported done but file not present yet", "path", path)
		return
	}

	show, err := m.storage.GetShow(ctx, int64(entry.ShowID))
	if err != nil {
		log.Errorw("loading show for finished download", "error", err)
		return
	}

	newPath, err := m.renamer.Rename(ctx, entry, *show, path)
	if err != nil {
		// left in downloading; the next cycle retries
		log.Warnw("rename failed", "path", path, "error", err)
		return
	}

	if err := m.storage.UpdateEntryFilePath(ctx, int64(entry.ID), newPath); err != nil {
		log.Errorw("storing file path", "error", err)
		return
	}

	if err := m.storage.UpdateEntryState(ctx, int64(entry.ID), storage.EntryStateCompleted); err != nil {
		log.Errorw("marking entry completed", "error", err)
		return
	}

	log.Infow("episode completed", "path", newPath, "size", humanize.Bytes(uint64(status.Size)))
}
