package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the catalog API and keeps one cached snapshot per list
// endpoint. Every mutation invalidates the snapshot of the entity it touched,
// so the next list read hits the server again.
type Client struct {
	baseURL string
	http    *http.Client

	authors *listCache[Author]
	books   *listCache[Book]
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a Client for the API rooted at baseURL (e.g. "http://localhost:5174").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		authors: newListCache[Author]("/api/authors"),
		books:   newListCache[Book]("/api/books"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ════════════════════════════════════════════════════════════════════════════
// Authors
// ════════════════════════════════════════════════════════════════════════════

// Authors returns the cached author list, fetching it if stale. The returned
// version identifies the snapshot.
func (c *Client) Authors(ctx context.Context) ([]Author, uint64, error) {
	return c.authors.get(ctx, func(ctx context.Context) ([]Author, error) {
		var out []Author
		if err := c.do(ctx, http.MethodGet, "/api/authors", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// Author fetches a single author by id. Detail reads bypass the list cache.
func (c *Client) Author(ctx context.Context, id int64) (*Author, error) {
	var out Author
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/authors/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAuthor creates an author and invalidates the author list.
func (c *Client) CreateAuthor(ctx context.Context, name string) (*Author, error) {
	var out Author
	body := map[string]any{"name": name}
	if err := c.do(ctx, http.MethodPost, "/api/authors", body, &out); err != nil {
		return nil, err
	}
	c.authors.invalidate()
	return &out, nil
}

// UpdateAuthor applies a sparse patch and invalidates the author list.
func (c *Client) UpdateAuthor(ctx context.Context, id int64, patch AuthorPatch) (*Author, error) {
	body := map[string]any{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	var out Author
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/authors/%d", id), body, &out); err != nil {
		return nil, err
	}
	c.authors.invalidate()
	return &out, nil
}

// DeleteAuthor deletes an author. Both lists are invalidated since books
// referencing the author lose their author field server-side.
func (c *Client) DeleteAuthor(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/authors/%d", id), nil, nil); err != nil {
		return err
	}
	c.authors.invalidate()
	c.books.invalidate()
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
// Books
// ════════════════════════════════════════════════════════════════════════════

// Books returns the cached book list, fetching it if stale.
func (c *Client) Books(ctx context.Context) ([]Book, uint64, error) {
	return c.books.get(ctx, func(ctx context.Context) ([]Book, error) {
		var out []Book
		if err := c.do(ctx, http.MethodGet, "/api/books", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// Book fetches a single book by id.
func (c *Client) Book(ctx context.Context, id int64) (*Book, error) {
	var out Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/books/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBook creates a book, optionally attached to an author, and
// invalidates the book list.
func (c *Client) CreateBook(ctx context.Context, title string, authorID *int64) (*Book, error) {
	body := map[string]any{"title": title, "author_id": authorID}
	var out Book
	if err := c.do(ctx, http.MethodPost, "/api/books", body, &out); err != nil {
		return nil, err
	}
	c.books.invalidate()
	c.authors.invalidate()
	return &out, nil
}

// UpdateBook applies a sparse patch and invalidates the book list. Author
// book counts may change, so the author list is invalidated too.
func (c *Client) UpdateBook(ctx context.Context, id int64, patch BookPatch) (*Book, error) {
	body := map[string]any{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.SetAuthor {
		body["author_id"] = patch.AuthorID
	}
	var out Book
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/books/%d", id), body, &out); err != nil {
		return nil, err
	}
	c.books.invalidate()
	c.authors.invalidate()
	return &out, nil
}

// DeleteBook deletes a book and invalidates both lists.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/books/%d", id), nil, nil); err != nil {
		return err
	}
	c.books.invalidate()
	c.authors.invalidate()
	return nil
}

// do performs one request. Non-2xx responses are decoded into *APIError; out
// may be nil for responses without a body.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
