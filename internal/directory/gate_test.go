package directory

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string, fallbackAllow bool) *Client {
	return NewClient(baseURL, fallbackAllow, 2*time.Second, 16, time.Minute)
}

func TestIsEmployee(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("email") == "mario@example.com" {
			w.Write([]byte(`{"exists":true}`))
			return
		}
		w.Write([]byte(`{"exists":false}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, false)

	assert.True(t, client.IsEmployee("mario@example.com"))
	assert.False(t, client.IsEmployee("outsider@example.com"))
}

func TestIsEmployeeCachesLookups(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"exists":true}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, false)

	assert.True(t, client.IsEmployee("mario@example.com"))
	assert.True(t, client.IsEmployee("mario@example.com"))
	assert.True(t, client.IsEmployee("MARIO@example.com"), "cache key is the lowercased email")
	assert.Equal(t, int32(1), calls.Load())
}

func TestIsEmployeeFallbackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.True(t, newTestClient(srv.URL, true).IsEmployee("mario@example.com"))
	assert.False(t, newTestClient(srv.URL, false).IsEmployee("mario@example.com"))
}

func TestIsEmployeeFallbackWhenUnreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1", true)
	assert.True(t, client.IsEmployee("mario@example.com"))
}

func TestFallbackResultIsNotCached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"exists":true}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, false)

	assert.False(t, client.IsEmployee("mario@example.com"), "first call hits the failing upstream")
	assert.True(t, client.IsEmployee("mario@example.com"), "recovered upstream answer is used")
	assert.Equal(t, int32(2), calls.Load())
}
