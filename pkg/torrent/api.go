package torrent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

//go:generate mockgen -package mocks -destination mocks/mock_client.go github.com/fossabot/Tsundoku/pkg/torrent Client

// ErrTorrentNotFound is returned by Get when the client no longer tracks the
// requested hash. Entries in that situation were removed out-of-band.
var ErrTorrentNotFound = errors.New("torrent not found")

// Status is a snapshot of a single torrent in the download client.
type Status struct {
	Hash     string
	Name     string
	SavePath string
	Progress float64
	Size     int64 // bytes
	Done     bool
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client submits magnets to a download client and reports their progress.
type Client interface {
	// Add submits a magnet URI and returns the torrent's info hash.
	Add(ctx context.Context, magnet string) (string, error)
	// Get looks up a previously added torrent by info hash.
	Get(ctx context.Context, hash string) (Status, error)
}

// Config describes how to reach the download client's RPC endpoint.
type Config struct {
	Scheme   string `validate:"oneof=http https"`
	Host     string `validate:"required"`
	Port     int    `validate:"gt=0"`
	Password string
}

func (c Config) url() string {
	return fmt.Sprintf("%s://%s:%d/json", c.Scheme, c.Host, c.Port)
}
