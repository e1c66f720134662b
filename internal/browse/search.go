package browse

import (
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the number of characters (after trimming) a query needs
// before search activates. Shorter queries leave the full list showing.
const MinQueryLength = 3

// Snapshot is one observed state of a backing list: the items plus whether a
// fetch is in flight or has failed. Version identifies the snapshot so
// derived state can be memoized against it.
type Snapshot[T any] struct {
	Items   []T
	Loading bool
	Err     error
	Version uint64
}

// SearchResult is the resolved outcome of running a query against a list.
// When Active is false the query was too short and the other fields are
// zero; Loading and Err only reflect the list state while a search is active.
type SearchResult[T any] struct {
	Active  bool
	Loading bool
	Err     error
	Match   *T
}

// Active reports whether a query is long enough to search with. Length is
// counted in runes so multi-byte queries need the same number of characters.
func Active(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= MinQueryLength
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveSearch matches query against the list, reading each item's
// searchable text through name. Exact matches win over prefix matches, which
// win over substring matches; ties go to the item appearing first in the
// list. At most one item is returned.
func ResolveSearch[T any](query string, list Snapshot[T], name func(T) string) SearchResult[T] {
	if !Active(query) {
		return SearchResult[T]{}
	}

	res := SearchResult[T]{Active: true, Loading: list.Loading, Err: list.Err}
	if list.Loading || list.Err != nil {
		return res
	}

	q := normalize(query)
	var prefix, contains *T
	for i := range list.Items {
		n := normalize(name(list.Items[i]))
		switch {
		case n == q:
			res.Match = &list.Items[i]
			return res
		case prefix == nil && strings.HasPrefix(n, q):
			prefix = &list.Items[i]
		case prefix == nil && contains == nil && strings.Contains(n, q):
			contains = &list.Items[i]
		}
	}
	if prefix != nil {
		res.Match = prefix
	} else if contains != nil {
		res.Match = contains
	}
	return res
}
