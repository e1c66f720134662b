package browse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklib-backend/pkg/client"
)

func authors(names ...string) []client.Author {
	out := make([]client.Author, len(names))
	for i, n := range names {
		out[i] = client.Author{ID: int64(i + 1), Name: n}
	}
	return out
}

func TestSectionResolve(t *testing.T) {
	t.Run("short query shows full list", func(t *testing.T) {
		s := NewAuthorsSection()
		s.SetSnapshot(Snapshot[client.Author]{Items: authors("Zoe", "Alice")})
		s.SetQuery("al")

		rows, state := s.Resolve()
		assert.Len(t, rows, 2)
		assert.Equal(t, TableOK, state.Phase)
	})

	t.Run("active query collapses to best match", func(t *testing.T) {
		s := NewAuthorsSection()
		s.SetSnapshot(Snapshot[client.Author]{Items: authors("Zoe", "Alice")})
		s.SetQuery("ali")

		rows, state := s.Resolve()
		require.Len(t, rows, 1)
		assert.Equal(t, "Alice", rows[0].Name)
		assert.Equal(t, TableOK, state.Phase)
	})

	t.Run("active query with no match", func(t *testing.T) {
		s := NewAuthorsSection()
		s.SetSnapshot(Snapshot[client.Author]{Items: authors("Zoe", "Alice")})
		s.SetQuery("xyz")

		rows, state := s.Resolve()
		assert.Empty(t, rows)
		assert.Equal(t, TableEmpty, state.Phase)
		assert.Equal(t, "No matching items", state.Message)
	})

	t.Run("empty list without search", func(t *testing.T) {
		s := NewAuthorsSection()
		s.SetSnapshot(Snapshot[client.Author]{})

		rows, state := s.Resolve()
		assert.Empty(t, rows)
		assert.Equal(t, TableEmpty, state.Phase)
		assert.Equal(t, "No data", state.Message)
	})

	t.Run("loading snapshot", func(t *testing.T) {
		s := NewAuthorsSection()
		s.SetSnapshot(Snapshot[client.Author]{Loading: true})

		_, state := s.Resolve()
		assert.Equal(t, TableLoading, state.Phase)
	})

	t.Run("failed snapshot", func(t *testing.T) {
		s := NewAuthorsSection()
		s.SetSnapshot(Snapshot[client.Author]{Err: errors.New("fetch failed")})

		_, state := s.Resolve()
		assert.Equal(t, TableError, state.Phase)
		assert.Equal(t, "fetch failed", state.Message)
	})

	t.Run("memoized until query or snapshot changes", func(t *testing.T) {
		s := NewAuthorsSection()
		s.SetSnapshot(Snapshot[client.Author]{Items: authors("Zoe", "Alice")})
		s.SetQuery("ali")

		first, _ := s.Resolve()
		second, _ := s.Resolve()
		require.Len(t, first, 1)
		assert.Same(t, &first[0], &second[0])

		s.SetQuery("zoe")
		third, _ := s.Resolve()
		require.Len(t, third, 1)
		assert.Equal(t, "Zoe", third[0].Name)
	})

	t.Run("books section searches titles", func(t *testing.T) {
		s := NewBooksSection()
		s.SetSnapshot(Snapshot[client.Book]{Items: []client.Book{
			{ID: 1, Title: "Persuasion"},
			{ID: 2, Title: "Emma"},
		}})
		s.SetQuery("emm")

		rows, _ := s.Resolve()
		require.Len(t, rows, 1)
		assert.Equal(t, "Emma", rows[0].Title)
	})
}

func TestDeleteAuthorGuard(t *testing.T) {
	t.Run("no books allows delete", func(t *testing.T) {
		zero := int64(0)
		_, ok := DeleteAuthorGuard(client.Author{Name: "Jane", BookCount: &zero})
		assert.True(t, ok)
	})

	t.Run("unknown count allows delete", func(t *testing.T) {
		_, ok := DeleteAuthorGuard(client.Author{Name: "Jane"})
		assert.True(t, ok)
	})

	t.Run("assigned books block delete with full message", func(t *testing.T) {
		two := int64(2)
		msg, ok := DeleteAuthorGuard(client.Author{Name: "Jane Austen", BookCount: &two})
		assert.False(t, ok)
		assert.Equal(t,
			`Cannot delete author: "Jane Austen". This author has 2 book(s) assigned. Please delete those book(s) first, then delete the author.`,
			msg)
	})
}
