// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/ewhitmore/glossa/internal/models"
)

// MockAPI is a configurable test double for [services.API]. Unset hooks
// return zero values, so tests only wire the endpoints they exercise.
type MockAPI struct {
	EntriesFn    func(ctx context.Context, page, limit int) ([]models.WordSummary, models.PageMeta, error)
	EntryFn      func(ctx context.Context, word string) (*models.WordDetail, error)
	FavoritesFn  func(ctx context.Context, page, limit int) ([]models.FavoriteEntry, models.PageMeta, error)
	FavoriteFn   func(ctx context.Context, word string) error
	UnfavoriteFn func(ctx context.Context, word string) error
	HistoryFn    func(ctx context.Context, page, limit int) ([]models.HistoryEntry, models.PageMeta, error)
	SignInFn     func(ctx context.Context, email, password string) (*models.Session, error)
}

func (m *MockAPI) Entries(ctx context.Context, page, limit int) ([]models.WordSummary, models.PageMeta, error) {
	if m.EntriesFn == nil {
		return nil, models.PageMeta{}, nil
	}
	return m.EntriesFn(ctx, page, limit)
}

func (m *MockAPI) Entry(ctx context.Context, word string) (*models.WordDetail, error) {
	if m.EntryFn == nil {
		return &models.WordDetail{Word: word}, nil
	}
	return m.EntryFn(ctx, word)
}

func (m *MockAPI) Favorites(ctx context.Context, page, limit int) ([]models.FavoriteEntry, models.PageMeta, error) {
	if m.FavoritesFn == nil {
		return nil, models.PageMeta{}, nil
	}
	return m.FavoritesFn(ctx, page, limit)
}

func (m *MockAPI) Favorite(ctx context.Context, word string) error {
	if m.FavoriteFn == nil {
		return nil
	}
	return m.FavoriteFn(ctx, word)
}

func (m *MockAPI) Unfavorite(ctx context.Context, word string) error {
	if m.UnfavoriteFn == nil {
		return nil
	}
	return m.UnfavoriteFn(ctx, word)
}

func (m *MockAPI) History(ctx context.Context, page, limit int) ([]models.HistoryEntry, models.PageMeta, error) {
	if m.HistoryFn == nil {
		return nil, models.PageMeta{}, nil
	}
	return m.HistoryFn(ctx, page, limit)
}

func (m *MockAPI) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if m.SignInFn == nil {
		return &models.Session{Token: "mock-token", Email: email}, nil
	}
	return m.SignInFn(ctx, email, password)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
