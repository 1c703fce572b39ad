// Package library renames finished downloads into their final name and
// location.
package library

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/fossabot/Tsundoku/pkg/io"
	"github.com/fossabot/Tsundoku/pkg/logger"
	"github.com/fossabot/Tsundoku/pkg/storage"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/model"
)

// DefaultFormat is used when a show has no desired format configured.
const DefaultFormat = "{n} - {s00e00}"

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

type Library struct {
	fileIO io.FileIO
}

func New(fileIO io.FileIO) *Library {
	return &Library{fileIO: fileIO}
}

// RenderName substitutes the naming placeholders of a format template.
// Unknown placeholders pass through verbatim so typos are visible in the
// resulting file name instead of silently dropped.
func RenderName(format string, show model.Shows, episode int32) string {
	season := show.Season

	return placeholderPattern.ReplaceAllStringFunc(format, func(m string) string {
		switch m[1 : len(m)-1] {
		case "n":
			return show.SearchTitle
		case "s":
			return strconv.Itoa(int(season))
		case "e":
			return strconv.Itoa(int(episode))
		case "s00":
			return fmt.Sprintf("%02d", season)
		case "e00":
			return fmt.Sprintf("%02d", episode)
		case "s00e00":
			return fmt.Sprintf("S%02dE%02d", season, episode)
		case "sxe":
			return fmt.Sprintf("%dx%02d", season, episode)
		default:
			return m
		}
	})
}

// Rename moves a finished download to its final name. The destination is the
// show's desired folder when configured, otherwise the file stays in place.
// It returns the new path; persisting it is the caller's job.
func (l *Library) Rename(ctx context.Context, entry storage.Entry, show model.Shows, currentPath string) (string, error) {
	log := logger.FromCtx(ctx)

	format := DefaultFormat
	if show.DesiredFormat != nil && *show.DesiredFormat != "" {
		format = *show.DesiredFormat
	}

	episode := entry.Episode + show.EpisodeOffset
	name := RenderName(format, show, episode) + filepath.Ext(currentPath)

	dir := filepath.Dir(currentPath)
	if show.DesiredFolder != nil && *show.DesiredFolder != "" {
		dir = *show.DesiredFolder
	}

	target := filepath.Join(dir, name)
	if target == currentPath {
		return target, nil
	}

	if err := l.fileIO.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating destination directory: %w", err)
	}

	sameFS, err := l.fileIO.IsSameFileSystem(currentPath, dir)
	if err != nil {
		log.Debugw("file system check failed, copying instead", "source", currentPath, "target", target, "error", err)
	}

	if sameFS {
		if err := l.fileIO.Rename(currentPath, target); err != nil {
			return "", err
		}
		return target, nil
	}

	// cross-device: stage next to the target so the final rename is atomic
	staging := target + ".partial"
	if _, err := l.fileIO.Copy(currentPath, staging); err != nil {
		return "", fmt.Errorf("copying across file systems: %w", err)
	}

	if err := l.fileIO.Rename(staging, target); err != nil {
		return "", err
	}

	if err := l.fileIO.Remove(currentPath); err != nil {
		log.Warnw("failed to remove original after copy", "path", currentPath, "error", err)
	}

	return target, nil
}
