package feed

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	bracketTagPattern = regexp.MustCompile(`\[[^\]]*\]`)
	parenTagPattern   = regexp.MustCompile(`\([^)]*\)`)
	// nyaa episode convention: "[Group] Show - 05 (1080p).mkv", optionally "05v2"
	nyaaEpisodePattern = regexp.MustCompile(`\s-\s(\d{1,4})(?:v\d+)?\b`)
	batchRangePattern  = regexp.MustCompile(`\(?\d{1,4}\s*[-~]\s*\d{1,4}\)?`)
)

// LinkResolver turns a non-magnet item link into a magnet URI.
type LinkResolver interface {
	Resolve(ctx context.Context, link string) (string, error)
}

// NyaaParser understands nyaa.si release conventions: bracketed group tags,
// dash-separated episode numbers, batch releases, and the feed's torrent
// extensions.
type NyaaParser struct {
	DefaultParser
	resolver LinkResolver
}

func NewNyaaParser(name, feedURL string, resolver LinkResolver) *NyaaParser {
	return &NyaaParser{
		DefaultParser: DefaultParser{FeedName: name, FeedURL: feedURL},
		resolver:      resolver,
	}
}

// Ignore drops batch releases; individual episodes arrive on their own.
func (p *NyaaParser) Ignore(item Item) bool {
	title := strings.ToLower(item.Title)
	if strings.Contains(title, "batch") {
		return true
	}

	// strip group tags but keep parens, batch ranges often live in them
	return batchRangePattern.MatchString(bracketTagPattern.ReplaceAllString(item.Title, " "))
}

// ShowName strips group tags and quality qualifiers before the episode cut.
func (p *NyaaParser) ShowName(fileName string) string {
	name := stripTags(trimVideoExtension(fileName))

	if loc := seasonEpisodePattern.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	} else if loc := nyaaEpisodePattern.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	}

	return strings.Trim(strings.Join(strings.Fields(name), " "), " -._")
}

func (p *NyaaParser) EpisodeNumber(fileName string) (int, bool) {
	name := stripTags(trimVideoExtension(fileName))

	if m := seasonEpisodePattern.FindStringSubmatch(name); m != nil {
		return mustAtoi(m[2])
	}
	if m := nyaaEpisodePattern.FindStringSubmatch(name); m != nil {
		return mustAtoi(m[1])
	}

	return 0, false
}

// ResolveLink prefers the feed's magnet extension, then builds one from the
// info hash, and only then falls back to fetching the .torrent file.
func (p *NyaaParser) ResolveLink(ctx context.Context, item Item) (string, error) {
	if item.Magnet != "" {
		return item.Magnet, nil
	}

	if item.InfoHash != "" {
		params := url.Values{}
		params.Set("xt", "urn:btih:"+item.InfoHash)
		if item.Title != "" {
			params.Set("dn", item.Title)
		}
		return "magnet:?" + params.Encode(), nil
	}

	if p.resolver == nil {
		return "", fmt.Errorf("no magnet source for item %q", item.Title)
	}

	return p.resolver.Resolve(ctx, item.Link)
}

// stripTags removes bracketed group tags and parenthesized qualifiers.
func stripTags(name string) string {
	name = bracketTagPattern.ReplaceAllString(name, " ")
	name = parenTagPattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
