package client

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	loadAttempts    = 3
	loadBackoffStep = 500 * time.Millisecond
)

// CatalogLoader performs the initial course load: a bounded-retry fetch that
// falls back to the cached list when every attempt fails. Load never returns
// an error; an empty catalog is the degraded result.
type CatalogLoader struct {
	Client *Client
	Cache  *CourseCache
	Logger *log.Logger

	mu      sync.Mutex
	loading bool

	// delay is swapped in tests to avoid real backoff sleeps.
	delay func(attempt int) time.Duration
}

func NewCatalogLoader(c *Client, cache *CourseCache, logger *log.Logger) *CatalogLoader {
	return &CatalogLoader{
		Client: c,
		Cache:  cache,
		Logger: logger,
		delay:  LinearBackoff(loadBackoffStep),
	}
}

// Loading reports whether a load is in flight.
func (l *CatalogLoader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *CatalogLoader) setLoading(v bool) {
	l.mu.Lock()
	l.loading = v
	l.mu.Unlock()
}

// Load fetches the catalog with retries. On success the cache is refreshed;
// on exhaustion the cached list is served if one exists, otherwise the
// result is empty. The loading flag is false by the time Load returns.
func (l *CatalogLoader) Load(ctx context.Context) []CourseSummary {
	l.setLoading(true)
	defer l.setLoading(false)

	courses, err := Retry(ctx, loadAttempts, l.delay,
		func(ctx context.Context) ([]CourseSummary, error) {
			return l.Client.Courses(ctx)
		})
	if err != nil {
		if l.Logger != nil {
			l.Logger.Printf("course load failed after %d attempts: %v", loadAttempts, err)
		}
		cached, cacheErr := l.Cache.Load()
		if cacheErr != nil && l.Logger != nil {
			l.Logger.Printf("course cache unreadable: %v", cacheErr)
		}
		if cached == nil {
			cached = []CourseSummary{}
		}
		return cached
	}

	if err := l.Cache.Save(courses); err != nil && l.Logger != nil {
		l.Logger.Printf("course cache write failed, cache dropped: %v", err)
	}
	return courses
}
