package main

import (
	"context"

	"github.com/ewhitmore/glossa/internal/formatter"
	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/pager"
	"github.com/urfave/cli/v3"
)

// History prints recently viewed words, most recent first, ten per advance.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	pages := cmd.Int("pages")

	cursor := pager.New(func(ctx context.Context, page, limit int) ([]models.HistoryEntry, error) {
		entries, _, err := r.api.History(ctx, page, limit)
		return entries, err
	}, 10, 1)

	for i := 0; i < pages && cursor.HasMore(); i++ {
		if _, err := cursor.Next(ctx); err != nil {
			return err
		}
	}

	entries := cursor.Items()

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(entries, true)
	case cmd.Bool("csv"):
		data, err := formatter.HistoryToCSV(entries)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	default:
		if len(entries) == 0 {
			return r.writePlain("No history yet\n")
		}
		return r.writeBytes(formatter.HistoryToText(entries))
	}
}
