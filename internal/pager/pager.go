// Package pager implements the paginated fetch-merge loop that backs every
// scrolling list in the client.
//
// A [Pager] owns one page cursor: the next page index to request, the
// accumulated items, and the loading / exhaustion / error flags. Advances are
// driven by the caller (the TUI's "near end of list" signal or an explicit
// CLI flag), never by the pager itself. Re-entrant advances are suppressed by
// the loading gate, and results that resolve after a [Pager.Reset] are
// discarded by generation matching.
package pager

import (
	"context"
	"sync"
)

// Fetch retrieves a single page of items from the backing API.
type Fetch[T any] func(ctx context.Context, page, limit int) ([]T, error)

// Advance identifies one in-flight load: the pages it requests and the
// generation it belongs to. Completing an Advance from a stale generation is
// a no-op, which is how the pager ignores loads that finish after a reset.
type Advance struct {
	Pages []int
	gen   uint64
}

// Pager accumulates items from a paged endpoint, span pages per advance.
type Pager[T any] struct {
	fetch   Fetch[T]
	limit   int
	span    int
	page    int
	gen     uint64
	items   []T
	loading bool
	hasMore bool
	err     error
}

// New creates a pager over fetch requesting limit items per page and span
// pages per advance. Pages are 1-indexed, matching the dictionary API.
func New[T any](fetch Fetch[T], limit, span int) *Pager[T] {
	if limit <= 0 {
		limit = 10
	}
	if span <= 0 {
		span = 1
	}
	return &Pager[T]{
		fetch:   fetch,
		limit:   limit,
		span:    span,
		page:    1,
		hasMore: true,
	}
}

// Items returns the accumulated items in request order.
func (p *Pager[T]) Items() []T { return p.items }

// Len returns the number of accumulated items.
func (p *Pager[T]) Len() int { return len(p.items) }

// Limit returns the per-page item count.
func (p *Pager[T]) Limit() int { return p.limit }

// NextPage returns the page index the next advance will request.
func (p *Pager[T]) NextPage() int { return p.page }

// Loading reports whether an advance is in flight.
func (p *Pager[T]) Loading() bool { return p.loading }

// HasMore reports whether the server may still have items for this list.
func (p *Pager[T]) HasMore() bool { return p.hasMore }

// Err returns the error recorded by the most recent failed advance. It is
// cleared when the next advance starts.
func (p *Pager[T]) Err() error { return p.err }

// Begin flips the loading gate and returns the pages the caller should fetch.
// It returns ok=false while a load is in flight or after exhaustion, so
// repeated scroll signals cannot issue overlapping requests.
func (p *Pager[T]) Begin() (Advance, bool) {
	if p.loading || !p.hasMore {
		return Advance{}, false
	}
	p.loading = true
	p.err = nil

	pages := make([]int, p.span)
	for i := range pages {
		pages[i] = p.page + i
	}
	return Advance{Pages: pages, gen: p.gen}, true
}

// Complete folds a finished fetch back into the cursor. On success the batch
// is appended as-is (no de-duplication), the cursor moves past the fetched
// pages, and exhaustion flips when the batch is shorter than requested. On
// error the cursor and items are untouched, so a retry re-requests the same
// pages. Completions from a stale generation are dropped; the return value
// reports whether the completion was accepted, so callers can skip their own
// bookkeeping (status lines, item syncs) for stale results.
func (p *Pager[T]) Complete(adv Advance, batch []T, err error) bool {
	if adv.gen != p.gen || !p.loading {
		return false
	}
	p.loading = false

	if err != nil {
		p.err = err
		return true
	}

	p.items = append(p.items, batch...)
	p.page += len(adv.Pages)
	p.hasMore = len(batch) >= len(adv.Pages)*p.limit
	return true
}

// FetchPages fetches the given pages concurrently and concatenates the
// batches in page order. If any page fails, the whole advance fails and the
// partial results are discarded.
func (p *Pager[T]) FetchPages(ctx context.Context, pages []int) ([]T, error) {
	if len(pages) == 1 {
		return p.fetch(ctx, pages[0], p.limit)
	}

	batches := make([][]T, len(pages))
	errs := make([]error, len(pages))

	var wg sync.WaitGroup
	for i, page := range pages {
		wg.Add(1)
		go func(i, page int) {
			defer wg.Done()
			batches[i], errs[i] = p.fetch(ctx, page, p.limit)
		}(i, page)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var merged []T
	for _, batch := range batches {
		merged = append(merged, batch...)
	}
	return merged, nil
}

// Next performs one full advance synchronously: Begin, fetch, Complete.
// It returns the number of items appended. Used by the CLI, where there is
// no event loop to split the handshake across.
func (p *Pager[T]) Next(ctx context.Context) (int, error) {
	adv, ok := p.Begin()
	if !ok {
		return 0, nil
	}

	batch, err := p.FetchPages(ctx, adv.Pages)
	p.Complete(adv, batch, err)
	if err != nil {
		return 0, err
	}
	return len(batch), nil
}

// Reset clears the accumulated list and returns the cursor to the first
// page. Any in-flight advance becomes stale and its completion is ignored.
func (p *Pager[T]) Reset() {
	p.gen++
	p.page = 1
	p.items = nil
	p.loading = false
	p.hasMore = true
	p.err = nil
}
