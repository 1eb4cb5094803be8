package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/ewhitmore/glossa/internal/tasks"
	"github.com/urfave/cli/v3"
)

// CachePrefetch walks the full word list at a bounded rate and stores every
// entry in the local cache.
func (r *Runner) CachePrefetch(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	opts := tasks.PrefetchOpts{
		PageSize:  r.config.Prefetch.PageSize,
		MaxPages:  r.config.Prefetch.MaxPages,
		RateLimit: r.config.Prefetch.RatePerSecond,
	}
	if rate := cmd.Int("rate"); rate > 0 {
		opts.RateLimit = float64(rate)
	}
	if pageSize := cmd.Int("page-size"); pageSize > 0 {
		opts.PageSize = pageSize
	}
	if maxPages := cmd.Int("max-pages"); maxPages > 0 {
		opts.MaxPages = maxPages
	}

	r.logger.Info("starting prefetch", "rate", opts.RateLimit, "page_size", opts.PageSize, "max_pages", opts.MaxPages)

	prog := make(chan tasks.ProgressUpdate, 50)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for update := range prog {
			r.logger.Info(update.Message, "phase", update.Phase.String(), "page", update.Step)
		}
	}()

	engine := tasks.NewPrefetchEngine(r.api, r.cache)
	result, err := engine.Run(ctx, prog, opts)
	close(prog)
	wg.Wait()

	if err != nil {
		return fmt.Errorf("prefetch failed: %w", err)
	}

	r.writePlain("✓ Prefetch complete\n")
	r.writePlain("Pages fetched: %d\n", result.PagesFetched)
	r.writePlain("Words cached: %d\n", result.WordsCached)
	if result.Exhausted {
		r.writePlain("The full word list is cached locally\n")
	} else {
		r.writePlain("Page budget reached before the list was exhausted\n")
	}
	return nil
}

// CacheStats shows the cached word count.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	count, err := r.cache.Count()
	if err != nil {
		return fmt.Errorf("failed to count cached words: %w", err)
	}

	return r.writePlain("%d words cached\n", count)
}

// CacheClear deletes all cached words and resets the insertion sequence.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	if err := r.cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return r.writePlain("✓ Cache cleared\n")
}
