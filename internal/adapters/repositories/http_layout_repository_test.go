package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"shopping-path-service/internal/domain"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPRepository(t *testing.T, url string) *HTTPLayoutRepository {
	t.Helper()

	repo, err := NewHTTPLayoutRepository(url, domain.DefaultStoreProfile())
	require.NoError(t, err)
	repo.backoff = time.Millisecond
	return repo
}

func TestHTTPLayoutRepositoryRetriesTransientFailures(t *testing.T) {
	doc, err := os.ReadFile("testdata/layout.json")
	require.NoError(t, err)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(doc)
	}))
	defer srv.Close()

	entries, err := newTestHTTPRepository(t, srv.URL).ListProductLocations(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 9)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPLayoutRepositoryDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such layout", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestHTTPRepository(t, srv.URL).ListProductLocations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPLayoutRepositoryGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestHTTPRepository(t, srv.URL).ListProductLocations(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(4), calls.Load())
}

func TestHTTPLayoutRepositoryMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Gang 1": "oops"}`))
	}))
	defer srv.Close()

	_, err := newTestHTTPRepository(t, srv.URL).ListProductLocations(context.Background())
	assert.ErrorIs(t, err, ErrMalformedLayout)
}

func TestNewHTTPLayoutRepositoryRequiresURL(t *testing.T) {
	_, err := NewHTTPLayoutRepository(" ", domain.DefaultStoreProfile())
	assert.Error(t, err)
}
