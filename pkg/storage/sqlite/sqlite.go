package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fossabot/Tsundoku/pkg/logger"
	"github.com/fossabot/Tsundoku/pkg/storage"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/model"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/table"
)

type SQLite struct {
	db *sql.DB
}

// New creates a new sqlite database given a path to the database file
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	return SQLite{
		db: db,
	}, nil
}

// Init brings the database schema up to date
func (s SQLite) Init(ctx context.Context) error {
	return runMigrations(s.db)
}

// CreateShow stores a new show in the database
func (s SQLite) CreateShow(ctx context.Context, show model.Shows) (int64, error) {
	stmt := table.Shows.
		INSERT(table.Shows.MutableColumns).
		MODEL(show)

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create show: %w", err)
	}

	return result.LastInsertId()
}

// GetShow gets a show by id
func (s SQLite) GetShow(ctx context.Context, id int64) (*model.Shows, error) {
	stmt := table.Shows.
		SELECT(table.Shows.AllColumns).
		WHERE(table.Shows.ID.EQ(sqlite.Int64(id)))

	var show model.Shows
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	return &show, nil
}

// ListShows lists all shows
func (s SQLite) ListShows(ctx context.Context) ([]*model.Shows, error) {
	shows := make([]*model.Shows, 0)

	stmt := table.Shows.
		SELECT(table.Shows.AllColumns).
		ORDER_BY(table.Shows.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	return shows, nil
}

// DeleteShow removes a show by id
func (s SQLite) DeleteShow(ctx context.Context, id int64) error {
	stmt := table.Shows.
		DELETE().
		WHERE(table.Shows.ID.EQ(sqlite.Int64(id)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete show: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// CreateEntry stores a new show entry in its initial state
func (s SQLite) CreateEntry(ctx context.Context, entry storage.Entry, initialState storage.EntryState) (int64, error) {
	entry.CurrentState = string(initialState)

	stmt := table.ShowEntry.
		INSERT(table.ShowEntry.MutableColumns).
		MODEL(entry.ShowEntry)

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create entry: %w", err)
	}

	return result.LastInsertId()
}

// GetEntry gets an entry by id
func (s SQLite) GetEntry(ctx context.Context, id int64) (*storage.Entry, error) {
	stmt := table.ShowEntry.
		SELECT(table.ShowEntry.AllColumns).
		WHERE(table.ShowEntry.ID.EQ(sqlite.Int64(id)))

	var entry storage.Entry
	err := stmt.QueryContext(ctx, s.db, &entry)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return &entry, nil
}

// ListEntries lists entries matching all the given conditions
func (s SQLite) ListEntries(ctx context.Context, where ...sqlite.BoolExpression) ([]*storage.Entry, error) {
	entries := make([]*storage.Entry, 0)

	stmt := table.ShowEntry.
		SELECT(table.ShowEntry.AllColumns).
		ORDER_BY(table.ShowEntry.ID.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	err := stmt.QueryContext(ctx, s.db, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}

// ListEntriesByState lists all entries in a given state
func (s SQLite) ListEntriesByState(ctx context.Context, state storage.EntryState) ([]*storage.Entry, error) {
	return s.ListEntries(ctx, table.ShowEntry.CurrentState.EQ(sqlite.String(string(state))))
}

// UpdateEntryState transitions an entry to a new state. The transition is
// validated against the entry machine before anything is written.
func (s SQLite) UpdateEntryState(ctx context.Context, id int64, state storage.EntryState) error {
	entry, err := s.GetEntry(ctx, id)
	if err != nil {
		return err
	}

	if err := entry.Machine().ToState(state); err != nil {
		return fmt.Errorf("entry %d: %s -> %s: %w", id, entry.State(), state, err)
	}

	stmt := table.ShowEntry.
		UPDATE().
		SET(table.ShowEntry.CurrentState.SET(sqlite.String(string(state)))).
		WHERE(table.ShowEntry.ID.EQ(sqlite.Int64(id)))

	_, err = s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update entry state: %w", err)
	}

	return nil
}

// UpdateEntryTorrentHash records the handle returned by the torrent client
func (s SQLite) UpdateEntryTorrentHash(ctx context.Context, id int64, hash string) error {
	stmt := table.ShowEntry.
		UPDATE().
		SET(table.ShowEntry.TorrentHash.SET(sqlite.String(hash))).
		WHERE(table.ShowEntry.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update entry torrent hash: %w", err)
	}

	return nil
}

// UpdateEntryFilePath records the renamed path of a completed entry
func (s SQLite) UpdateEntryFilePath(ctx context.Context, id int64, path string) error {
	stmt := table.ShowEntry.
		UPDATE().
		SET(table.ShowEntry.FilePath.SET(sqlite.String(path))).
		WHERE(table.ShowEntry.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update entry file path: %w", err)
	}

	return nil
}

func (s SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debugw("failed to init transaction", "error", err)
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debugw("failed to execute statement", "query", stmt.DebugSql(), "error", err)
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}
