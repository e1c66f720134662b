package browse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTableStateSearchBranch(t *testing.T) {
	t.Run("search loading wins over list state", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{
			Searching:  true,
			SearchBusy: true,
			ListErr:    errors.New("stale list failure"),
		})
		assert.Equal(t, TableLoading, state.Phase)
	})

	t.Run("search error", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{
			Searching: true,
			SearchErr: errors.New("boom"),
		})
		assert.Equal(t, TableError, state.Phase)
		assert.Equal(t, "boom", state.Message)
	})

	t.Run("no match uses default message", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{
			Searching:   true,
			SearchEmpty: true,
		})
		assert.Equal(t, TableEmpty, state.Phase)
		assert.Equal(t, "No matching items", state.Message)
	})

	t.Run("no match honors override", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{
			Searching:      true,
			SearchEmpty:    true,
			NoMatchMessage: "No authors match your search",
		})
		assert.Equal(t, "No authors match your search", state.Message)
	})

	t.Run("match found", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{Searching: true})
		assert.Equal(t, TableOK, state.Phase)
	})

	t.Run("search ok ignores empty list", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{
			Searching: true,
			ListEmpty: true,
		})
		assert.Equal(t, TableOK, state.Phase)
	})
}

func TestResolveTableStateListBranch(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{ListBusy: true})
		assert.Equal(t, TableLoading, state.Phase)
	})

	t.Run("error", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{ListErr: errors.New("db down")})
		assert.Equal(t, TableError, state.Phase)
		assert.Equal(t, "db down", state.Message)
	})

	t.Run("empty uses default message", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{ListEmpty: true})
		assert.Equal(t, TableEmpty, state.Phase)
		assert.Equal(t, "No data", state.Message)
	})

	t.Run("empty honors override", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{ListEmpty: true, NoDataMessage: "No books yet"})
		assert.Equal(t, "No books yet", state.Message)
	})

	t.Run("rows present", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{})
		assert.Equal(t, TableOK, state.Phase)
	})

	t.Run("loading wins over error", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{ListBusy: true, ListErr: errors.New("x")})
		assert.Equal(t, TableLoading, state.Phase)
	})

	t.Run("error wins over empty", func(t *testing.T) {
		state := ResolveTableState(TableStateInput{ListErr: errors.New("x"), ListEmpty: true})
		assert.Equal(t, TableError, state.Phase)
	})
}
