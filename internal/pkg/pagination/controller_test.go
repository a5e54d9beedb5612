package pagination

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagesOf builds a fetcher over a fixed dataset that reports totals the way
// a backend would.
func pagesOf(items []string, reportTotalPages bool) Fetcher[string] {
	return func(ctx context.Context, page, size int) (Page[string], error) {
		start, end := SliceIndices(page, size, len(items))
		p := Page[string]{
			Items:      items[start:end],
			Number:     page,
			TotalItems: int64(len(items)),
		}
		if reportTotalPages {
			p.TotalPages = TotalPages(int64(len(items)), size)
		}
		return p, nil
	}
}

func dataset(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	return items
}

func TestControllerLoad(t *testing.T) {
	c := NewController(pagesOf(dataset(25), true), 10)
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, StateLoaded, c.State())
	assert.Len(t, c.Items(), 10)
	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, 3, c.TotalPages())
	assert.GreaterOrEqual(t, c.CurrentPage(), 1)
	assert.LessOrEqual(t, c.CurrentPage(), c.TotalPages())
}

func TestControllerDerivesTotalPages(t *testing.T) {
	// The server omits totalPages; the controller computes it from totals.
	c := NewController(pagesOf(dataset(25), false), 10)
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 3, c.TotalPages())
}

func TestControllerEmptyListIsOnePage(t *testing.T) {
	c := NewController(pagesOf(nil, false), 10)
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, 1, c.TotalPages())
}

func TestControllerNextPrevious(t *testing.T) {
	ctx := context.Background()
	c := NewController(pagesOf(dataset(25), true), 10)
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.Next(ctx))
	assert.Equal(t, 2, c.CurrentPage())
	require.NoError(t, c.Next(ctx))
	assert.Equal(t, 3, c.CurrentPage())
	assert.Len(t, c.Items(), 5)

	require.NoError(t, c.Previous(ctx))
	assert.Equal(t, 2, c.CurrentPage())
}

func TestControllerNextAtLastPageIsNoop(t *testing.T) {
	ctx := context.Background()
	fetches := 0
	fetch := func(ctx context.Context, page, size int) (Page[string], error) {
		fetches++
		return Page[string]{Items: dataset(3), Number: page, TotalPages: 1}, nil
	}
	c := NewController(fetch, 10)
	require.NoError(t, c.Load(ctx))
	require.Equal(t, 1, fetches)

	require.NoError(t, c.Next(ctx))

	assert.Equal(t, 1, fetches, "no request may be issued at the boundary")
	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, StateLoaded, c.State())
}

func TestControllerPreviousAtFirstPageIsNoop(t *testing.T) {
	ctx := context.Background()
	c := NewController(pagesOf(dataset(25), true), 10)
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.Previous(ctx))

	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, StateLoaded, c.State())
}

func TestControllerErrorRetainsLastGoodPage(t *testing.T) {
	ctx := context.Background()
	fail := false
	wantErr := errors.New("boom")
	inner := pagesOf(dataset(25), true)
	fetch := func(ctx context.Context, page, size int) (Page[string], error) {
		if fail {
			return Page[string]{}, wantErr
		}
		return inner(ctx, page, size)
	}

	c := NewController(fetch, 10)
	require.NoError(t, c.Load(ctx))
	require.NoError(t, c.Next(ctx))
	require.Equal(t, 2, c.CurrentPage())

	fail = true
	err := c.Next(ctx)
	require.ErrorIs(t, err, wantErr)

	assert.Equal(t, StateErrored, c.State())
	assert.Equal(t, 2, c.CurrentPage(), "last good page survives the failure")
	assert.Equal(t, wantErr, c.Err())

	// Retry re-issues the identical request once the backend recovers.
	fail = false
	require.NoError(t, c.Retry(ctx))
	assert.Equal(t, StateLoaded, c.State())
	assert.Equal(t, 3, c.CurrentPage())
	assert.Nil(t, c.Err())
}

func TestControllerReplacePatchesLoadedPage(t *testing.T) {
	ctx := context.Background()
	c := NewController(pagesOf(dataset(5), true), 10)
	require.NoError(t, c.Load(ctx))

	c.Replace([]string{"x", "y"})
	assert.Equal(t, []string{"x", "y"}, c.Items())
	assert.Equal(t, 1, c.CurrentPage())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
}

func TestSliceIndices(t *testing.T) {
	start, end := SliceIndices(1, 10, 25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end = SliceIndices(3, 10, 25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = SliceIndices(5, 10, 25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}
