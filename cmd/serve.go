package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fossabot/Tsundoku/config"
	"github.com/fossabot/Tsundoku/pkg/feed"
	phttp "github.com/fossabot/Tsundoku/pkg/http"
	mio "github.com/fossabot/Tsundoku/pkg/io"
	"github.com/fossabot/Tsundoku/pkg/library"
	"github.com/fossabot/Tsundoku/pkg/logger"
	"github.com/fossabot/Tsundoku/pkg/manager"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite"
	"github.com/fossabot/Tsundoku/pkg/torrent"
	"github.com/fossabot/Tsundoku/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the acquisition daemon",
	Long:  `start the acquisition daemon`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		pollInterval, err := cfg.Poller.PollInterval()
		if err != nil {
			log.Fatalw("invalid poll interval", "interval", cfg.Poller.Interval, "error", err)
		}

		watchInterval := cfg.Watcher.Interval
		if watchInterval <= 0 {
			watchInterval = manager.DefaultWatchInterval
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatalw("failed to create storage connection", "error", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		if err := store.Init(ctx); err != nil {
			log.Fatalw("failed to init database", "error", err)
		}

		client := torrent.NewDelugeClient(phttp.NewRateLimitedHTTPClient(), torrent.Config{
			Scheme:   cfg.Deluge.Scheme,
			Host:     cfg.Deluge.Host,
			Port:     cfg.Deluge.Port,
			Password: cfg.Deluge.Password,
		})

		resolver := torrent.NewMagnetResolver(phttp.NewRateLimitedHTTPClient())

		parsers := make([]feed.Parser, 0, len(cfg.Feeds))
		for _, f := range cfg.Feeds {
			switch f.Parser {
			case "nyaa":
				parsers = append(parsers, feed.NewNyaaParser(f.Name, f.URL, resolver))
			default:
				parsers = append(parsers, feed.NewGenericParser(f.Name, f.URL))
			}
		}

		fileIO := &mio.MediaFileSystem{}
		renamer := library.New(fileIO)
		fetcher := feed.NewRSSFetcher()

		m := manager.New(store, client, fetcher, parsers, renamer, fileIO)

		if err := m.RecoverPending(ctx); err != nil {
			log.Fatalw("failed to recover pending entries", "error", err)
		}

		go m.PollFeeds(ctx, pollInterval)
		go m.WatchDownloads(ctx, watchInterval)

		srv := server.New(log, store, m)
		if err := srv.Serve(ctx, cfg.Server.Port); err != nil {
			log.Errorw("server shutdown", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
