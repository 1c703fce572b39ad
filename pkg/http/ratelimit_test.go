package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoPassesThroughSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewRateLimitedHTTPClient()
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDoRetriesOn429(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewRateLimitedHTTPClient(WithBaseBackoff(time.Millisecond), WithMaxRetries(5))
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDoGivesUpAfterMaxRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewRateLimitedHTTPClient(WithBaseBackoff(time.Millisecond), WithMaxRetries(2))
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	assert.Error(t, err)
	if resp != nil {
		resp.Body.Close()
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	}
}

func TestGetRetryAfterHeader(t *testing.T) {
	c := NewRateLimitedHTTPClient(WithBaseBackoff(time.Second))

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("Retry-After", "7")
	assert.Equal(t, 7*time.Second, c.getRetryAfter(resp, 0))

	// a zero header falls back to exponential backoff
	resp.Header.Set("Retry-After", "0")
	assert.Equal(t, time.Second, c.getRetryAfter(resp, 0))

	resp.Header.Del("Retry-After")
	assert.Equal(t, time.Second, c.getRetryAfter(resp, 0))
	assert.Equal(t, 4*time.Second, c.getRetryAfter(resp, 2))
}
