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

// WordsList prints dictionary entries, advancing the word-list pager the
// requested number of times. Each advance fetches two pages of five entries,
// the same stride the TUI uses.
func (r *Runner) WordsList(ctx context.Context, cmd *cli.Command) error {
	pages := cmd.Int("pages")
	useJSON := cmd.Bool("json")
	useCSV := cmd.Bool("csv")
	if useJSON && useCSV {
		return fmt.Errorf("%w: --json and --csv are mutually exclusive", shared.ErrInvalidFlag)
	}

	cursor := pager.New(func(ctx context.Context, page, limit int) ([]models.WordSummary, error) {
		words, _, err := r.api.Entries(ctx, page, limit)
		return words, err
	}, 5, 2)

	for i := 0; i < pages && cursor.HasMore(); i++ {
		if _, err := cursor.Next(ctx); err != nil {
			return err
		}
	}

	words := cursor.Items()
	r.logger.Info("fetched word list", "words", len(words), "exhausted", !cursor.HasMore())

	switch {
	case useJSON:
		return r.writeJSON(words, true)
	case useCSV:
		data, err := formatter.WordListToCSV(words)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	default:
		for _, word := range words {
			if err := r.writePlain("%s\n", word.Word); err != nil {
				return err
			}
		}
		if !cursor.HasMore() {
			r.writePlain("(end of list)\n")
		}
		return nil
	}
}

// WordsShow prints phonetics and meanings for one word. The lookup also
// records a history entry server-side.
func (r *Runner) WordsShow(ctx context.Context, cmd *cli.Command) error {
	word := cmd.StringArg("word")
	if word == "" {
		return fmt.Errorf("%w: word is required", shared.ErrMissingArgument)
	}

	detail, err := r.api.Entry(ctx, word)
	if err != nil {
		return err
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(detail, true)
	case cmd.Bool("markdown"):
		return r.writeBytes(formatter.DetailToMarkdown(detail))
	default:
		return r.writeBytes(formatter.DetailToText(detail))
	}
}
