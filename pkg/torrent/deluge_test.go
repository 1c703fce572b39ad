package torrent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "6363d51a4dd88cc1b3c8f8fdef5d4b0f"

// delugeFixture fakes the Deluge web UI json endpoint. It hands out a session
// cookie on auth.login and rejects calls made without it.
type delugeFixture struct {
	t        *testing.T
	password string
	logins   int
	torrents map[string]delugeTorrentStatus
	// expireSession forces the next authenticated call to fail once
	expireSession bool
}

func (f *delugeFixture) handler(w http.ResponseWriter, r *http.Request) {
	var req delugeRequest
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))

	respond := func(result any, rpcErr *delugeError) {
		b, err := json.Marshal(result)
		require.NoError(f.t, err)
		resp := delugeResponse{Result: b, Error: rpcErr, ID: req.ID}
		require.NoError(f.t, json.NewEncoder(w).Encode(resp))
	}

	if req.Method == "auth.login" {
		f.logins++
		ok := len(req.Params) == 1 && req.Params[0] == f.password
		if ok {
			http.SetCookie(w, &http.Cookie{Name: "_session_id", Value: testSessionID})
		}
		respond(ok, nil)
		return
	}

	cookie, err := r.Cookie("_session_id")
	if err != nil || cookie.Value != testSessionID || f.expireSession {
		f.expireSession = false
		respond(nil, &delugeError{Code: delugeCodeNotAuthenticated, Message: "Not authenticated"})
		return
	}

	switch req.Method {
	case "core.add_torrent_magnet":
		magnet, _ := req.Params[0].(string)
		u, err := url.Parse(magnet)
		require.NoError(f.t, err)
		hash := strings.TrimPrefix(u.Query().Get("xt"), "urn:btih:")
		f.torrents[hash] = delugeTorrentStatus{Name: "added", Progress: 0}
		respond(hash, nil)
	case "core.get_torrent_status":
		hash, _ := req.Params[0].(string)
		status, ok := f.torrents[hash]
		if !ok {
			respond(map[string]any{}, nil)
			return
		}
		respond(status, nil)
	default:
		f.t.Fatalf("unexpected method %q", req.Method)
	}
}

func newDelugeFixture(t *testing.T) (*delugeFixture, *DelugeClient) {
	f := &delugeFixture{
		t:        t,
		password: "deluge",
		torrents: make(map[string]delugeTorrentStatus),
	}

	srv := httptest.NewServer(http.HandlerFunc(f.handler))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	client := NewDelugeClient(srv.Client(), Config{
		Scheme:   "http",
		Host:     u.Hostname(),
		Port:     port,
		Password: "deluge",
	})

	return f, client
}

func TestDelugeClientAdd(t *testing.T) {
	f, client := newDelugeFixture(t)
	ctx := context.Background()

	hash, err := client.Add(ctx, "magnet:?xt=urn:btih:abc123&dn=test")
	require.NoError(t, err)
	assert.Equal(t, "abc123", hash)
	assert.Equal(t, 1, f.logins, "should log in once on first use")

	// session reused on subsequent calls
	_, err = client.Add(ctx, "magnet:?xt=urn:btih:def456")
	require.NoError(t, err)
	assert.Equal(t, 1, f.logins)
}

func TestDelugeClientAddBadPassword(t *testing.T) {
	_, client := newDelugeFixture(t)
	client.password = "wrong"

	_, err := client.Add(context.Background(), "magnet:?xt=urn:btih:abc123")
	assert.ErrorContains(t, err, "rejected")
}

func TestDelugeClientGet(t *testing.T) {
	f, client := newDelugeFixture(t)
	ctx := context.Background()

	f.torrents["abc123"] = delugeTorrentStatus{
		Name:       "Show - S01E05.mkv",
		SavePath:   "/downloads",
		Progress:   100,
		State:      "Seeding",
		IsFinished: true,
	}

	status, err := client.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", status.Hash)
	assert.Equal(t, "Show - S01E05.mkv", status.Name)
	assert.Equal(t, "/downloads", status.SavePath)
	assert.True(t, status.Done)
}

func TestDelugeClientGetNotFound(t *testing.T) {
	_, client := newDelugeFixture(t)

	_, err := client.Get(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrTorrentNotFound)
}

func TestDelugeClientReauthenticates(t *testing.T) {
	f, client := newDelugeFixture(t)
	ctx := context.Background()

	_, err := client.Add(ctx, "magnet:?xt=urn:btih:abc123")
	require.NoError(t, err)
	require.Equal(t, 1, f.logins)

	f.expireSession = true

	status, err := client.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", status.Hash)
	assert.Equal(t, 2, f.logins, "expired session should trigger one re-login")
}
