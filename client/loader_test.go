package client

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newLoader(t *testing.T, server *httptest.Server) (*CatalogLoader, *CourseCache) {
	t.Helper()
	cache := NewCourseCache(filepath.Join(t.TempDir(), "courses.json"))
	loader := NewCatalogLoader(New(server.URL), cache, quietLogger())
	loader.delay = func(int) time.Duration { return 0 }
	return loader, cache
}

func catalogHandler(courses []CourseSummary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    courses,
		})
	}
}

func TestLoadFetchesAndCaches(t *testing.T) {
	courses := []CourseSummary{{ID: 1, Title: "Go", Lessons: 4}}
	server := httptest.NewServer(catalogHandler(courses))
	defer server.Close()

	loader, cache := newLoader(t, server)

	got := loader.Load(context.Background())
	assert.Equal(t, courses, got)
	assert.False(t, loader.Loading())

	cached, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, courses, cached)
}

func TestLoadAllRetriesFailWithCache(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	loader, cache := newLoader(t, server)
	cached := []CourseSummary{{ID: 9, Title: "Cached course"}}
	require.NoError(t, cache.Save(cached))

	got := loader.Load(context.Background())
	assert.Equal(t, cached, got, "exhausted retries fall back to the cached list")
	assert.Equal(t, int32(3), attempts.Load())
	assert.False(t, loader.Loading())
}

func TestLoadAllRetriesFailWithoutCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	loader, _ := newLoader(t, server)

	got := loader.Load(context.Background())
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.False(t, loader.Loading())
}

func TestLoadRecoversOnLaterAttempt(t *testing.T) {
	courses := []CourseSummary{{ID: 2, Title: "SQL"}}
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		catalogHandler(courses)(w, r)
	}))
	defer server.Close()

	loader, _ := newLoader(t, server)

	got := loader.Load(context.Background())
	assert.Equal(t, courses, got)
}
