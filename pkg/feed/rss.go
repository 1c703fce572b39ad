package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	phttp "github.com/fossabot/Tsundoku/pkg/http"
	"github.com/fossabot/Tsundoku/pkg/logger"
)

// rss mirrors the subset of the RSS 2.0 document feeds publish, including the
// nyaa torrent extensions.
type rss struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title    string `xml:"title"`
	Link     string `xml:"link"`
	GUID     string `xml:"guid"`
	PubDate  string `xml:"pubDate"`
	InfoHash string `xml:"infoHash"`
	Magnet   string `xml:"magnetURI"`
}

// RSSFetcher fetches and decodes RSS feeds over a rate-limited client.
type RSSFetcher struct {
	http phttp.HTTPClient
}

func NewRSSFetcher(opts ...phttp.ClientOption) *RSSFetcher {
	return &RSSFetcher{
		http: phttp.NewRateLimitedHTTPClient(opts...),
	}
}

func (f *RSSFetcher) Fetch(ctx context.Context, url string) ([]Item, error) {
	log := logger.FromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %v", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var doc rss
	if err := xml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}

	items := make([]Item, 0, len(doc.Channel.Items))
	for _, ri := range doc.Channel.Items {
		item := Item{
			Title:    ri.Title,
			Link:     ri.Link,
			GUID:     ri.GUID,
			InfoHash: ri.InfoHash,
			Magnet:   ri.Magnet,
		}
		if item.GUID == "" {
			item.GUID = ri.Link
		}
		if ri.PubDate != "" {
			published, err := parsePubDate(ri.PubDate)
			if err != nil {
				log.Debugw("unparseable pubDate", "pubDate", ri.PubDate, "title", ri.Title)
			} else {
				item.PublishedAt = published
			}
		}
		items = append(items, item)
	}

	return items, nil
}

func parsePubDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}
