package manager

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/fossabot/Tsundoku/pkg/feed"
	"github.com/fossabot/Tsundoku/pkg/logger"
	"github.com/fossabot/Tsundoku/pkg/match"
)

// PollFeeds checks every configured feed for new episodes on the given
// interval until the context is cancelled. A failing source never blocks the
// others.
func (m *Manager) PollFeeds(ctx context.Context, interval time.Duration) {
	log := logger.FromCtx(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		m.pollOnce(ctx)

		select {
		case <-ctx.Done():
			log.Debug("feed polling stopped")
			return
		case <-ticker.C:
		}
	}
}

func (m *Manager) pollOnce(ctx context.Context) {
	log := logger.FromCtx(ctx)

	for _, parser := range m.parsers {
		if err := m.pollSource(ctx, parser); err != nil {
			log.Errorw("feed source failed", "source", parser.Name(), "error", err)
		}
	}
}

func (m *Manager) pollSource(ctx context.Context, parser feed.Parser) error {
	log := logger.FromCtx(ctx, "source", parser.Name())

	items, err := m.fetcher.Fetch(ctx, parser.URL())
	if err != nil {
		return err
	}

	shows, err := m.storage.ListShows(ctx)
	if err != nil {
		return err
	}

	candidates := make([]match.Candidate, 0, len(shows))
	for _, show := range shows {
		candidates = append(candidates, match.Candidate{ID: int64(show.ID), Title: show.SearchTitle})
	}

	for _, item := range items {
		m.handleItem(ctx, log, parser, item, candidates)
	}

	return nil
}

func (m *Manager) handleItem(ctx context.Context, log *zap.SugaredLogger, parser feed.Parser, item feed.Item, candidates []match.Candidate) {
	if _, ok := m.seen.Get(item.GUID); ok {
		return
	}

	if parser.Ignore(item) {
		m.seen.Set(item.GUID, struct{}{})
		return
	}

	fileName := parser.FileName(item)

	episode, ok := parser.EpisodeNumber(fileName)
	if !ok {
		log.Debugw("no episode number", "title", item.Title)
		m.seen.Set(item.GUID, struct{}{})
		return
	}

	showName := parser.ShowName(fileName)
	result, ok := match.Resolve(showName, candidates)
	if !ok {
		log.Debugw("no tracked show matched", "show", showName)
		return
	}

	link, err := parser.ResolveLink(ctx, item)
	if err != nil {
		log.Warnw("could not resolve item link", "title", item.Title, "error", err)
		return
	}

	_, err = m.BeginAcquisition(ctx, result.Candidate.ID, int32(episode), link)
	if errors.Is(err, ErrEntryExists) {
		m.seen.Set(item.GUID, struct{}{})
		return
	}
	if err != nil {
		log.Errorw("acquisition failed", "title", item.Title, "error", err)
		return
	}

	log.Infow("new episode found", "show", showName, "episode", episode, "score", result.Score)
	m.seen.Set(item.GUID, struct{}{})
}
