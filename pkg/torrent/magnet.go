package torrent

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/zeebo/bencode"
)

// metainfo is the subset of a .torrent file needed to build a magnet URI.
// Info stays raw so the hash covers the exact bytes the tracker saw.
type metainfo struct {
	Announce     string             `bencode:"announce"`
	AnnounceList [][]string         `bencode:"announce-list"`
	Info         bencode.RawMessage `bencode:"info"`
}

type infoDict struct {
	Name string `bencode:"name"`
}

// MagnetResolver turns feed links into magnet URIs. Links that already are
// magnets pass through untouched; http links are fetched and decoded as
// .torrent metainfo.
type MagnetResolver struct {
	http HTTPClient
}

func NewMagnetResolver(http HTTPClient) *MagnetResolver {
	return &MagnetResolver{http: http}
}

func (r *MagnetResolver) Resolve(ctx context.Context, link string) (string, error) {
	if strings.HasPrefix(link, "magnet:") {
		return link, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %v", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return MagnetFromTorrent(b)
}

// MagnetFromTorrent builds a magnet URI from raw .torrent file contents.
func MagnetFromTorrent(data []byte) (string, error) {
	var meta metainfo
	if err := bencode.DecodeBytes(data, &meta); err != nil {
		return "", fmt.Errorf("decoding torrent metainfo: %w", err)
	}

	if len(meta.Info) == 0 {
		return "", fmt.Errorf("torrent metainfo has no info dictionary")
	}

	hash := sha1.Sum(meta.Info)

	var info infoDict
	if err := bencode.DecodeBytes(meta.Info, &info); err != nil {
		return "", fmt.Errorf("decoding torrent info dictionary: %w", err)
	}

	params := url.Values{}
	params.Set("xt", "urn:btih:"+hex.EncodeToString(hash[:]))
	if info.Name != "" {
		params.Set("dn", info.Name)
	}

	trackers := make([]string, 0, 1)
	if meta.Announce != "" {
		trackers = append(trackers, meta.Announce)
	}
	for _, tier := range meta.AnnounceList {
		for _, tracker := range tier {
			if tracker != meta.Announce {
				trackers = append(trackers, tracker)
			}
		}
	}
	for _, tracker := range trackers {
		params.Add("tr", tracker)
	}

	return "magnet:?" + params.Encode(), nil
}
