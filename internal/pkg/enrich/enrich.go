// Package enrich augments primary records with related entities fetched from
// a secondary lookup: forum posts with their author's profile, submissions
// with the student's name. Lookups are deduplicated, memoized per screen and
// issued concurrently; one failed lookup degrades its records instead of
// failing the batch.
package enrich

import (
	"context"
	"sync"

	"github.com/classconnect/classconnect-go/internal/pkg/logger"
)

// FetchFunc loads the related entity for one foreign key.
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Enriched pairs a primary record with its related entity. Related is nil
// when the lookup failed; the screen then renders the record without the
// enrichment (e.g. omits the author name).
type Enriched[T any, V any] struct {
	Record  T
	Related *V
}

// Enrich merges related entities into records positionally. Every unique
// foreign key is fetched at most once per pass: cache hits are reused, cache
// misses are fetched concurrently and the results stored back. Enrich never
// fails as a whole; a rejected lookup does not cancel its siblings.
func Enrich[T any, K comparable, V any](
	ctx context.Context,
	records []T,
	keyFn func(T) K,
	cache *Cache[K, V],
	fetch FetchFunc[K, V],
) []Enriched[T, V] {
	// Unique keys not already memoized.
	seen := make(map[K]bool, len(records))
	var missing []K
	for _, record := range records {
		key := keyFn(record)
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := cache.Get(key); !ok {
			missing = append(missing, key)
		}
	}

	// Fetch the misses concurrently. No errgroup here: a failing sibling
	// must not cancel the rest of the batch.
	var wg sync.WaitGroup
	for _, key := range missing {
		wg.Add(1)
		go func(key K) {
			defer wg.Done()
			value, err := fetch(ctx, key)
			if err != nil {
				logger.Warn().Err(err).Interface("key", key).Msg("Enrichment lookup failed, record degraded")
				return
			}
			cache.Put(key, value)
		}(key)
	}
	wg.Wait()

	out := make([]Enriched[T, V], len(records))
	for i, record := range records {
		out[i] = Enriched[T, V]{Record: record}
		if value, ok := cache.Get(keyFn(record)); ok {
			v := value
			out[i].Related = &v
		}
	}
	return out
}
