package feed

import (
	"context"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	seasonEpisodePattern = regexp.MustCompile(`(?i)\bS(\d{1,2})\s*E(\d{1,3})\b`)
	dashEpisodePattern   = regexp.MustCompile(`\s-\s(\d{1,4})(?:\s|$|\()`)
	videoExtensions      = map[string]bool{
		".mkv": true,
		".mp4": true,
		".avi": true,
		".ts":  true,
	}
)

// DefaultParser is the passthrough source adapter. Source-specific parsers
// embed it and override only the hooks their feed needs.
type DefaultParser struct {
	FeedName string
	FeedURL  string
}

func (p DefaultParser) Name() string { return p.FeedName }

func (p DefaultParser) URL() string { return p.FeedURL }

// Ignore keeps every item by default.
func (p DefaultParser) Ignore(Item) bool { return false }

// FileName uses the item title verbatim.
func (p DefaultParser) FileName(item Item) string { return item.Title }

// ShowName strips the video extension and anything from the episode marker on.
func (p DefaultParser) ShowName(fileName string) string {
	name := trimVideoExtension(fileName)

	if loc := seasonEpisodePattern.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	} else if loc := dashEpisodePattern.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	}

	return strings.Trim(name, " -._")
}

// EpisodeNumber understands the "S01E05" and "Show - 05" conventions.
func (p DefaultParser) EpisodeNumber(fileName string) (int, bool) {
	name := trimVideoExtension(fileName)

	if m := seasonEpisodePattern.FindStringSubmatch(name); m != nil {
		return mustAtoi(m[2])
	}
	if m := dashEpisodePattern.FindStringSubmatch(name); m != nil {
		return mustAtoi(m[1])
	}

	return 0, false
}

// ResolveLink prefers an explicit magnet over the item link.
func (p DefaultParser) ResolveLink(_ context.Context, item Item) (string, error) {
	if item.Magnet != "" {
		return item.Magnet, nil
	}

	return item.Link, nil
}

func trimVideoExtension(name string) string {
	if videoExtensions[strings.ToLower(filepath.Ext(name))] {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}

	return name
}

func mustAtoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}
