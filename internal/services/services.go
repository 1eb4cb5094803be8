// package services defines interface API for interacting with the dictionary backend
package services

import (
	"context"

	"github.com/ewhitmore/glossa/internal/models"
)

// API defines the operations the dictionary backend exposes to the client.
// The CLI runner, the TUI, and the prefetch engine all consume this interface
// so tests can substitute a double.
type API interface {
	// Entries retrieves one page of the word list.
	Entries(ctx context.Context, page, limit int) ([]models.WordSummary, models.PageMeta, error)

	// Entry retrieves the full dictionary entry for a word. The backend
	// records the lookup in the user's history as a side effect.
	Entry(ctx context.Context, word string) (*models.WordDetail, error)

	// Favorites retrieves one page of the user's favorited words.
	Favorites(ctx context.Context, page, limit int) ([]models.FavoriteEntry, models.PageMeta, error)

	// Favorite marks a word as a favorite.
	Favorite(ctx context.Context, word string) error

	// Unfavorite removes a word from the user's favorites.
	Unfavorite(ctx context.Context, word string) error

	// History retrieves one page of the user's lookup history.
	History(ctx context.Context, page, limit int) ([]models.HistoryEntry, models.PageMeta, error)

	// SignIn exchanges credentials for a bearer token and user profile.
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
}
