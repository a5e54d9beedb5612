// Package liststore holds the in-memory collection behind a listing screen
// and applies server-confirmed mutations to it as explicit commands over an
// immutable snapshot. Nothing here is optimistic in the rollback sense: a
// command is only dispatched after the server accepted the mutation, so
// there is no failure path to undo.
package liststore

// Keyed is any record addressable by a stable identifier.
type Keyed interface {
	Key() string
}

// Command is one confirmed mutation expressed as a transformation of the
// list. Commands operate on a fresh snapshot and return a new slice; they
// never splice the input in place.
type Command[T Keyed] interface {
	Apply(items []T) []T
}

// Create appends a newly created record.
type Create[T Keyed] struct {
	Item T
}

// Apply implements Command.
func (c Create[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, c.Item)
}

// Update replaces the record with the same key. A miss leaves the list
// unchanged (the record may live on another page).
type Update[T Keyed] struct {
	Item T
}

// Apply implements Command.
func (u Update[T]) Apply(items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i, item := range out {
		if item.Key() == u.Item.Key() {
			out[i] = u.Item
			break
		}
	}
	return out
}

// Delete removes the record with the given key.
type Delete[T Keyed] struct {
	ID string
}

// Apply implements Command.
func (d Delete[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Key() == d.ID {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Store is the locally held list plus a staleness flag for the backing
// query. Dispatching a command patches the visible list immediately and
// marks the query stale so the next natural refetch gets authoritative data.
type Store[T Keyed] struct {
	items []T
	stale bool
}

// New creates a store over the given items.
func New[T Keyed](items []T) *Store[T] {
	s := &Store[T]{}
	s.Reset(items)
	return s
}

// Reset installs freshly fetched items and clears the staleness flag.
func (s *Store[T]) Reset(items []T) {
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.stale = false
}

// Dispatch applies a confirmed mutation to a snapshot of the list and marks
// the backing query stale.
func (s *Store[T]) Dispatch(cmd Command[T]) {
	s.items = cmd.Apply(s.Snapshot())
	s.stale = true
}

// Snapshot returns a copy of the current items; callers may not mutate the
// store through it.
func (s *Store[T]) Snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items held.
func (s *Store[T]) Len() int { return len(s.items) }

// Stale reports whether a mutation happened since the last Reset.
func (s *Store[T]) Stale() bool { return s.stale }

// Find returns the record with the given key.
func (s *Store[T]) Find(key string) (T, bool) {
	for _, item := range s.items {
		if item.Key() == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}
