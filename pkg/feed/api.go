// Package feed fetches release feeds and extracts episode information from
// their item titles.
package feed

import (
	"context"
	"time"
)

//go:generate mockgen -package mocks -destination mocks/mock_fetcher.go github.com/fossabot/Tsundoku/pkg/feed Fetcher

// Item is a single release announced by a feed.
type Item struct {
	Title       string
	Link        string
	GUID        string
	PublishedAt time.Time

	// Source extensions, empty when the feed doesn't carry them.
	InfoHash string
	Magnet   string
}

// Fetcher retrieves the current items of a feed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]Item, error)
}

// Parser adapts one feed source's conventions to the acquisition pipeline.
// DefaultParser supplies the passthrough behavior; sources override only the
// hooks their feed needs.
type Parser interface {
	// Name identifies the source in logs.
	Name() string
	// URL is the feed to poll.
	URL() string
	// Ignore reports whether an item should be dropped before matching.
	Ignore(item Item) bool
	// FileName extracts the torrent's file name from the item title.
	FileName(item Item) string
	// ShowName extracts the searchable show name from a file name.
	ShowName(fileName string) string
	// EpisodeNumber extracts the episode number from a file name.
	EpisodeNumber(fileName string) (int, bool)
	// ResolveLink turns an item into something the download client accepts.
	ResolveLink(ctx context.Context, item Item) (string, error)
}
