package browse

import (
	"fmt"
	"sync"

	"booklib-backend/pkg/client"
)

// Section resolves one searchable table: it holds the current query and the
// latest list snapshot, and derives the visible rows and table state. Derived
// state is memoized per (query, snapshot) and recomputed only when either
// changes.
type Section[T any] struct {
	name func(T) string

	mu    sync.Mutex
	query string
	snap  Snapshot[T]

	memoValid bool
	memoRows  []T
	memoState TableState
}

// NewSection builds a section whose items are searched through name.
func NewSection[T any](name func(T) string) *Section[T] {
	return &Section[T]{name: name}
}

// SetQuery updates the search query.
func (s *Section[T]) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query == q {
		return
	}
	s.query = q
	s.memoValid = false
}

// SetSnapshot replaces the backing list snapshot.
func (s *Section[T]) SetSnapshot(snap Snapshot[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.memoValid = false
}

// Resolve returns the rows to display and the table state. While a search is
// active the rows collapse to the single best match, or to none when nothing
// matches; otherwise the full list shows.
func (s *Section[T]) Resolve() ([]T, TableState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.memoValid {
		return s.memoRows, s.memoState
	}

	search := ResolveSearch(s.query, s.snap, s.name)

	var rows []T
	if search.Active {
		if search.Match != nil {
			rows = []T{*search.Match}
		}
	} else {
		rows = s.snap.Items
	}

	state := ResolveTableState(TableStateInput{
		Searching:   search.Active,
		SearchBusy:  search.Loading,
		SearchErr:   search.Err,
		SearchEmpty: search.Active && !search.Loading && search.Err == nil && search.Match == nil,
		ListBusy:    s.snap.Loading,
		ListErr:     s.snap.Err,
		ListEmpty:   len(s.snap.Items) == 0,
	})

	s.memoRows = rows
	s.memoState = state
	s.memoValid = true
	return rows, state
}

// NewAuthorsSection builds a section over author rows, searched by name.
func NewAuthorsSection() *Section[client.Author] {
	return NewSection(func(a client.Author) string { return a.Name })
}

// NewBooksSection builds a section over book rows, searched by title.
func NewBooksSection() *Section[client.Book] {
	return NewSection(func(b client.Book) string { return b.Title })
}

// DeleteAuthorGuard blocks deleting an author that still has books assigned.
// It returns a human-readable reason and false when the delete must not
// proceed, or true when it may.
func DeleteAuthorGuard(a client.Author) (string, bool) {
	if a.BookCount == nil || *a.BookCount == 0 {
		return "", true
	}
	msg := fmt.Sprintf(
		"Cannot delete author: %q. This author has %d book(s) assigned. Please delete those book(s) first, then delete the author.",
		a.Name, *a.BookCount,
	)
	return msg, false
}
