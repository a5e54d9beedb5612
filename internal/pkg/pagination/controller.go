package pagination

import (
	"context"
)

// State is the lifecycle of a paginated listing.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateErrored State = "errored"
)

// Page is one page of results as returned by a backend listing endpoint.
// TotalPages is optional; when the server omits it the controller derives it
// from TotalItems and the page size.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	TotalItems int64
}

// Fetcher loads one page of at most size items.
type Fetcher[T any] func(ctx context.Context, page, size int) (Page[T], error)

// Controller drives a paginated listing: one page held in memory at a time,
// boundary-gated navigation, manual retry. All methods run on the single UI
// flow; the controller is not safe for concurrent use.
type Controller[T any] struct {
	fetch    Fetcher[T]
	pageSize int

	state      State
	items      []T
	current    int
	totalPages int
	lastErr    error
	// requested remembers the page of the in-flight or failed request so
	// Retry re-issues the identical request.
	requested int
}

// NewController creates an Idle controller; nothing is fetched until Load.
func NewController[T any](fetch Fetcher[T], pageSize int) *Controller[T] {
	return &Controller[T]{
		fetch:     fetch,
		pageSize:  NormalizeSize(pageSize),
		state:     StateIdle,
		current:   DefaultPage,
		requested: DefaultPage,
	}
}

// Load fetches the first page.
func (c *Controller[T]) Load(ctx context.Context) error {
	return c.RequestPage(ctx, DefaultPage)
}

// RequestPage fetches page n. On failure the controller moves to Errored but
// keeps the last successfully loaded page number and items, so the screen
// can keep rendering stale data next to the error state.
func (c *Controller[T]) RequestPage(ctx context.Context, n int) error {
	n = NormalizePage(n)
	c.state = StateLoading
	c.requested = n

	page, err := c.fetch(ctx, n, c.pageSize)
	if err != nil {
		c.state = StateErrored
		c.lastErr = err
		return err
	}

	total := page.TotalPages
	if total <= 0 {
		total = TotalPages(page.TotalItems, c.pageSize)
	}
	current := page.Number
	if current <= 0 {
		current = n
	}
	if current > total {
		current = total
	}

	c.state = StateLoaded
	c.items = page.Items
	c.current = current
	c.totalPages = total
	c.lastErr = nil
	return nil
}

// Next advances one page. At the last page it is a no-op, not an error.
func (c *Controller[T]) Next(ctx context.Context) error {
	if !c.HasNext() {
		return nil
	}
	return c.RequestPage(ctx, c.current+1)
}

// Previous goes back one page. At the first page it is a no-op.
func (c *Controller[T]) Previous(ctx context.Context) error {
	if !c.HasPrevious() {
		return nil
	}
	return c.RequestPage(ctx, c.current-1)
}

// Retry re-issues the identical last request after a failure. Retries are
// always user-initiated; the controller never retries on its own.
func (c *Controller[T]) Retry(ctx context.Context) error {
	return c.RequestPage(ctx, c.requested)
}

// Refresh re-fetches the page currently shown, used after a mutation marked
// this listing stale.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.RequestPage(ctx, c.current)
}

// Replace swaps the items of the currently loaded page without touching the
// page counters. The optimistic mutation path uses it to patch the visible
// list after a confirmed create/update/delete.
func (c *Controller[T]) Replace(items []T) {
	if c.state != StateLoaded {
		return
	}
	c.items = items
}

// HasNext reports whether a further page exists.
func (c *Controller[T]) HasNext() bool {
	return c.state == StateLoaded && c.current < c.totalPages
}

// HasPrevious reports whether an earlier page exists.
func (c *Controller[T]) HasPrevious() bool {
	return c.state == StateLoaded && c.current > 1
}

// State returns the controller state.
func (c *Controller[T]) State() State { return c.state }

// Items returns the currently loaded page's items.
func (c *Controller[T]) Items() []T { return c.items }

// CurrentPage returns the 1-based page number last loaded.
func (c *Controller[T]) CurrentPage() int { return c.current }

// TotalPages returns the page count from the last successful load.
func (c *Controller[T]) TotalPages() int { return c.totalPages }

// Err returns the failure that moved the controller to Errored, nil otherwise.
func (c *Controller[T]) Err() error { return c.lastErr }
