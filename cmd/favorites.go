package main

import (
	"context"
	"fmt"

	"github.com/ewhitmore/glossa/internal/formatter"
	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/pager"
	"github.com/ewhitmore/glossa/internal/shared"
	"github.com/urfave/cli/v3"
)

// FavoritesList prints favorited words, ten per advance.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	pages := cmd.Int("pages")

	cursor := pager.New(func(ctx context.Context, page, limit int) ([]models.FavoriteEntry, error) {
		favorites, _, err := r.api.Favorites(ctx, page, limit)
		return favorites, err
	}, 10, 1)

	for i := 0; i < pages && cursor.HasMore(); i++ {
		if _, err := cursor.Next(ctx); err != nil {
			return err
		}
	}

	favorites := cursor.Items()

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(favorites, true)
	case cmd.Bool("csv"):
		data, err := formatter.FavoritesToCSV(favorites)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	default:
		if len(favorites) == 0 {
			return r.writePlain("No favorites yet\n")
		}
		return r.writeBytes(formatter.FavoritesToText(favorites))
	}
}

// FavoritesAdd favorites a word.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	word := cmd.StringArg("word")
	if word == "" {
		return fmt.Errorf("%w: word is required", shared.ErrMissingArgument)
	}

	if err := r.api.Favorite(ctx, word); err != nil {
		return err
	}

	return r.writePlain("✓ %s added to favorites\n", shared.NormalizeWord(word))
}

// FavoritesRemove unfavorites a word.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	word := cmd.StringArg("word")
	if word == "" {
		return fmt.Errorf("%w: word is required", shared.ErrMissingArgument)
	}

	if err := r.api.Unfavorite(ctx, word); err != nil {
		return err
	}

	return r.writePlain("✓ %s removed from favorites\n", shared.NormalizeWord(word))
}
