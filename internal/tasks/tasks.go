package tasks

import (
	"context"
	"fmt"

	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/pager"
	"github.com/ewhitmore/glossa/internal/services"
	"github.com/ewhitmore/glossa/internal/shared"
	"golang.org/x/time/rate"
)

// WordCacher is the persistence surface the prefetch engine needs.
// Implemented by repositories.WordCacheRepository.
type WordCacher interface {
	CreateBatch(words []models.WordSummary) error
	Count() (int, error)
}

// PrefetchOpts contains configuration for a word cache prefetch run.
type PrefetchOpts struct {
	PageSize  int     // Items per page (default: 50)
	MaxPages  int     // Page budget; 0 walks until the API is exhausted
	RateLimit float64 // Requests per second (default: 4)
}

// PrefetchResult summarizes a finished prefetch run.
type PrefetchResult struct {
	PagesFetched int
	WordsCached  int
	Exhausted    bool
}

// PrefetchEngine walks the dictionary's word list page by page under a rate
// limit, mirroring each batch into the local word cache.
type PrefetchEngine struct {
	api   services.API
	cache WordCacher
}

// NewPrefetchEngine creates a PrefetchEngine over the given API and cache.
func NewPrefetchEngine(api services.API, cache WordCacher) *PrefetchEngine {
	return &PrefetchEngine{api: api, cache: cache}
}

// Run executes the prefetch: one rate-limited advance per page, each batch
// stored before the next page is requested. Progress events are sent
// non-blocking on prog (which may be nil). Run stops at exhaustion, the page
// budget, the first error, or context cancellation — whichever comes first.
func (e *PrefetchEngine) Run(ctx context.Context, prog chan<- ProgressUpdate, opts PrefetchOpts) (*PrefetchResult, error) {
	if e.api == nil {
		return nil, fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}
	if e.cache == nil {
		return nil, fmt.Errorf("%w: word cache not initialized", shared.ErrServiceUnavailable)
	}

	if opts.PageSize <= 0 {
		opts.PageSize = 50
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 4.0
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	fetch := func(ctx context.Context, page, limit int) ([]models.WordSummary, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		words, _, err := e.api.Entries(ctx, page, limit)
		return words, err
	}

	cursor := pager.New(fetch, opts.PageSize, 1)
	result := &PrefetchResult{}

	for cursor.HasMore() {
		if opts.MaxPages > 0 && result.PagesFetched >= opts.MaxPages {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		page := cursor.NextPage()
		e.sendProgress(prog, fetchPageUpdate(page, opts.MaxPages))

		adv, ok := cursor.Begin()
		if !ok {
			break
		}

		batch, err := cursor.FetchPages(ctx, adv.Pages)
		cursor.Complete(adv, batch, err)
		if err != nil {
			e.sendProgress(prog, prefetchFailedUpdate(page, opts.MaxPages, err))
			return result, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}

		result.PagesFetched++

		if len(batch) > 0 {
			if err := e.cache.CreateBatch(batch); err != nil {
				e.sendProgress(prog, prefetchFailedUpdate(page, opts.MaxPages, err))
				return result, fmt.Errorf("failed to cache page %d: %w", page, err)
			}
			result.WordsCached += len(batch)
		}

		e.sendProgress(prog, cachePageUpdate(page, opts.MaxPages, len(batch), result.WordsCached))
	}

	result.Exhausted = !cursor.HasMore()
	e.sendProgress(prog, prefetchDoneUpdate(result))
	return result, nil
}

// sendProgress delivers an update without blocking; slow consumers drop events.
func (e *PrefetchEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}
