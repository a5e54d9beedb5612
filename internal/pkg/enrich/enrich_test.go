package enrich

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	ID       string
	AuthorID string
}

type profile struct {
	ID   string
	Name string
}

// countingFetcher records lookups and fails for the configured keys.
type countingFetcher struct {
	mu       sync.Mutex
	calls    map[string]int
	failures map[string]bool
}

func newCountingFetcher(failing ...string) *countingFetcher {
	f := &countingFetcher{calls: map[string]int{}, failures: map[string]bool{}}
	for _, key := range failing {
		f.failures[key] = true
	}
	return f
}

func (f *countingFetcher) fetch(ctx context.Context, key string) (profile, error) {
	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()
	if f.failures[key] {
		return profile{}, errors.New("lookup rejected")
	}
	return profile{ID: key, Name: "user " + key}, nil
}

func (f *countingFetcher) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func TestEnrichMergesPositionally(t *testing.T) {
	posts := []post{{"p1", "u1"}, {"p2", "u2"}, {"p3", "u1"}}
	fetcher := newCountingFetcher()
	cache := NewCache[string, profile]()

	out := Enrich(context.Background(), posts,
		func(p post) string { return p.AuthorID },
		cache, fetcher.fetch)

	require.Len(t, out, 3)
	for i, e := range out {
		assert.Equal(t, posts[i], e.Record)
		require.NotNil(t, e.Related)
		assert.Equal(t, "user "+posts[i].AuthorID, e.Related.Name)
	}
}

func TestEnrichDeduplicatesLookups(t *testing.T) {
	posts := []post{{"p1", "u1"}, {"p2", "u1"}, {"p3", "u1"}, {"p4", "u2"}}
	fetcher := newCountingFetcher()
	cache := NewCache[string, profile]()

	Enrich(context.Background(), posts,
		func(p post) string { return p.AuthorID },
		cache, fetcher.fetch)

	assert.Equal(t, 1, fetcher.callCount("u1"), "each unique key is fetched once per pass")
	assert.Equal(t, 1, fetcher.callCount("u2"))
}

func TestEnrichPartialFailureDegradesOnlyThatRecord(t *testing.T) {
	// Batch of 5 where lookup #3 rejects: the other four still get their
	// enrichment.
	posts := []post{{"p1", "u1"}, {"p2", "u2"}, {"p3", "u3"}, {"p4", "u4"}, {"p5", "u5"}}
	fetcher := newCountingFetcher("u3")
	cache := NewCache[string, profile]()

	out := Enrich(context.Background(), posts,
		func(p post) string { return p.AuthorID },
		cache, fetcher.fetch)

	require.Len(t, out, 5)
	for i, e := range out {
		if posts[i].AuthorID == "u3" {
			assert.Nil(t, e.Related, "failed lookup leaves the record unenriched")
			continue
		}
		require.NotNil(t, e.Related, "sibling lookups must not be cancelled")
		assert.Equal(t, "user "+posts[i].AuthorID, e.Related.Name)
	}
}

func TestEnrichMemoizesAcrossPasses(t *testing.T) {
	posts := []post{{"p1", "u1"}}
	fetcher := newCountingFetcher()
	cache := NewCache[string, profile]()

	keyFn := func(p post) string { return p.AuthorID }
	Enrich(context.Background(), posts, keyFn, cache, fetcher.fetch)
	Enrich(context.Background(), posts, keyFn, cache, fetcher.fetch)

	assert.Equal(t, 1, fetcher.callCount("u1"), "second pass is served from the cache")
	assert.Equal(t, 1, cache.Len())
}

func TestEnrichFailedLookupIsRetriedNextPass(t *testing.T) {
	posts := []post{{"p1", "u1"}}
	fetcher := newCountingFetcher("u1")
	cache := NewCache[string, profile]()
	keyFn := func(p post) string { return p.AuthorID }

	out := Enrich(context.Background(), posts, keyFn, cache, fetcher.fetch)
	require.Nil(t, out[0].Related)

	// Failures are not cached; the lookup runs again when the screen
	// re-renders.
	fetcher.failures["u1"] = false
	out = Enrich(context.Background(), posts, keyFn, cache, fetcher.fetch)
	require.NotNil(t, out[0].Related)
	assert.Equal(t, 2, fetcher.callCount("u1"))
}
