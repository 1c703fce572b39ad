package torrent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/fossabot/Tsundoku/pkg/logger"
)

var _ Client = (*DelugeClient)(nil)

// DelugeClient talks to the Deluge web UI's JSON-RPC endpoint.
type DelugeClient struct {
	http     HTTPClient
	url      string
	password string
	mutex    *sync.Mutex
	session  string
	nextID   int
}

func NewDelugeClient(http HTTPClient, cfg Config) *DelugeClient {
	return &DelugeClient{
		http:     http,
		url:      cfg.url(),
		password: cfg.Password,
		mutex:    new(sync.Mutex),
	}
}

type delugeRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
	ID     int    `json:"id"`
}

type delugeError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *delugeError) Error() string {
	return fmt.Sprintf("deluge rpc error %d: %s", e.Code, e.Message)
}

type delugeResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *delugeError    `json:"error"`
	ID     int             `json:"id"`
}

// deluge reports an unauthenticated session with this code
const delugeCodeNotAuthenticated = 1

type delugeTorrentStatus struct {
	Name       string  `json:"name"`
	SavePath   string  `json:"save_path"`
	Progress   float64 `json:"progress"`
	State      string  `json:"state"`
	TotalSize  int64   `json:"total_size"`
	IsFinished bool    `json:"is_finished"`
}

var delugeStatusKeys = []string{
	"name",
	"save_path",
	"progress",
	"state",
	"total_size",
	"is_finished",
}

// Add submits a magnet URI and returns the info hash assigned by Deluge.
func (c *DelugeClient) Add(ctx context.Context, magnet string) (string, error) {
	result, err := c.call(ctx, "core.add_torrent_magnet", []any{magnet, map[string]any{}})
	if err != nil {
		return "", err
	}

	var hash string
	if err := json.Unmarshal(result, &hash); err != nil {
		return "", fmt.Errorf("decoding added torrent hash: %w", err)
	}

	if hash == "" {
		return "", errors.New("deluge returned an empty torrent hash")
	}

	return hash, nil
}

// Get looks up a torrent by info hash. A hash Deluge no longer tracks
// returns ErrTorrentNotFound.
func (c *DelugeClient) Get(ctx context.Context, hash string) (Status, error) {
	var status Status

	result, err := c.call(ctx, "core.get_torrent_status", []any{hash, delugeStatusKeys})
	if err != nil {
		return status, err
	}

	// deluge answers with an empty object for unknown hashes
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(result, &raw); err != nil {
		return status, fmt.Errorf("decoding torrent status: %w", err)
	}

	if len(raw) == 0 {
		return status, ErrTorrentNotFound
	}

	var ts delugeTorrentStatus
	if err := json.Unmarshal(result, &ts); err != nil {
		return status, fmt.Errorf("decoding torrent status: %w", err)
	}

	status = Status{
		Hash:     hash,
		Name:     ts.Name,
		SavePath: ts.SavePath,
		Progress: ts.Progress,
		Size:     ts.TotalSize,
		Done:     ts.IsFinished || ts.State == "Seeding",
	}

	return status, nil
}

func (c *DelugeClient) login(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	req, err := c.newRequest(ctx, "auth.login", []any{c.password})
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %v", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var response delugeResponse
	if err := json.Unmarshal(b, &response); err != nil {
		return err
	}

	if response.Error != nil {
		return response.Error
	}

	var ok bool
	if err := json.Unmarshal(response.Result, &ok); err != nil {
		return err
	}

	if !ok {
		return errors.New("deluge rejected the configured password")
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "_session_id" {
			c.setSession(cookie.String())
			log.Debugw("authenticated deluge session")
			return nil
		}
	}

	return errors.New("deluge login response carried no session cookie")
}

func (c *DelugeClient) call(ctx context.Context, method string, params []any, retry ...bool) (json.RawMessage, error) {
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	if c.getSession() == "" {
		if err := c.login(ctx); err != nil {
			return nil, err
		}
	}

	req, err := c.newRequest(ctx, method, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
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

	var response delugeResponse
	if err := json.Unmarshal(b, &response); err != nil {
		return nil, err
	}

	if response.Error != nil {
		// expired sessions get one fresh login before giving up
		if response.Error.Code == delugeCodeNotAuthenticated {
			if len(retry) != 0 && retry[0] {
				return nil, errors.New("session is invalid after retry")
			}

			logger.FromCtx(ctx).Debugw("deluge session expired, logging in again", "method", method)
			c.setSession("")
			if err := c.login(ctx); err != nil {
				return nil, err
			}

			return c.call(ctx, method, params, true)
		}

		return nil, response.Error
	}

	return response.Result, nil
}

func (c *DelugeClient) newRequest(ctx context.Context, method string, params []any) (*http.Request, error) {
	c.mutex.Lock()
	id := c.nextID
	c.nextID++
	c.mutex.Unlock()

	body, err := json.Marshal(delugeRequest{
		Method: method,
		Params: params,
		ID:     id,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if session := c.getSession(); session != "" {
		req.Header.Set("Cookie", session)
	}

	return req, nil
}

func (c *DelugeClient) setSession(session string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.session = session
}

func (c *DelugeClient) getSession() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.session
}
