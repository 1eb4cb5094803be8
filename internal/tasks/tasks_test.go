package tasks

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ewhitmore/glossa/internal/models"
	tu "github.com/ewhitmore/glossa/internal/testing"
)

// recordingCache collects batches in memory for assertions.
type recordingCache struct {
	batches [][]models.WordSummary
	words   int
	failOn  int // batch index to fail on, -1 disables
}

func newRecordingCache() *recordingCache {
	return &recordingCache{failOn: -1}
}

func (c *recordingCache) CreateBatch(words []models.WordSummary) error {
	if c.failOn >= 0 && len(c.batches) == c.failOn {
		return errors.New("disk full")
	}
	c.batches = append(c.batches, words)
	c.words += len(words)
	return nil
}

func (c *recordingCache) Count() (int, error) {
	return c.words, nil
}

// entriesOf builds an Entries hook serving total sequentially numbered words.
func entriesOf(total int, calls *int) func(context.Context, int, int) ([]models.WordSummary, models.PageMeta, error) {
	return func(ctx context.Context, page, limit int) ([]models.WordSummary, models.PageMeta, error) {
		if calls != nil {
			*calls++
		}
		start := (page - 1) * limit
		var words []models.WordSummary
		for i := start; i < start+limit && i < total; i++ {
			words = append(words, models.WordSummary{Word: fmt.Sprintf("w%03d", i)})
		}
		return words, models.PageMeta{Page: page, HasNext: start+limit < total}, nil
	}
}

func TestPrefetchEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("Walks Until Exhaustion", func(t *testing.T) {
		var calls int
		api := &tu.MockAPI{EntriesFn: entriesOf(23, &calls)}
		cache := newRecordingCache()
		engine := NewPrefetchEngine(api, cache)

		result, err := engine.Run(ctx, nil, PrefetchOpts{PageSize: 10, RateLimit: 1000})
		if err != nil {
			t.Fatalf("prefetch failed: %v", err)
		}

		if result.WordsCached != 23 {
			t.Errorf("expected 23 cached words, got %d", result.WordsCached)
		}
		if result.PagesFetched != 3 {
			t.Errorf("expected 3 pages, got %d", result.PagesFetched)
		}
		if !result.Exhausted {
			t.Error("expected exhaustion after the short final batch")
		}
		if cache.words != 23 {
			t.Errorf("expected cache to hold 23 words, got %d", cache.words)
		}

		// Batches must arrive in page order.
		if cache.batches[0][0].Word != "w000" || cache.batches[1][0].Word != "w010" {
			t.Errorf("batches out of order: %v", cache.batches)
		}
	})

	t.Run("Respects Page Budget", func(t *testing.T) {
		var calls int
		api := &tu.MockAPI{EntriesFn: entriesOf(1000, &calls)}
		cache := newRecordingCache()
		engine := NewPrefetchEngine(api, cache)

		result, err := engine.Run(ctx, nil, PrefetchOpts{PageSize: 10, MaxPages: 2, RateLimit: 1000})
		if err != nil {
			t.Fatalf("prefetch failed: %v", err)
		}

		if result.PagesFetched != 2 || result.WordsCached != 20 {
			t.Errorf("expected 2 pages / 20 words, got %d / %d", result.PagesFetched, result.WordsCached)
		}
		if result.Exhausted {
			t.Error("budget stop must not report exhaustion")
		}
		if calls != 2 {
			t.Errorf("expected 2 API calls, got %d", calls)
		}
	})

	t.Run("Fetch Error Stops The Walk", func(t *testing.T) {
		boom := errors.New("boom")
		api := &tu.MockAPI{
			EntriesFn: func(ctx context.Context, page, limit int) ([]models.WordSummary, models.PageMeta, error) {
				if page == 2 {
					return nil, models.PageMeta{}, boom
				}
				return entriesOf(1000, nil)(ctx, page, limit)
			},
		}
		cache := newRecordingCache()
		engine := NewPrefetchEngine(api, cache)

		result, err := engine.Run(ctx, nil, PrefetchOpts{PageSize: 10, RateLimit: 1000})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if result.PagesFetched != 1 || result.WordsCached != 10 {
			t.Errorf("expected the first page to survive, got %d pages / %d words", result.PagesFetched, result.WordsCached)
		}
	})

	t.Run("Cache Error Stops The Walk", func(t *testing.T) {
		api := &tu.MockAPI{EntriesFn: entriesOf(1000, nil)}
		cache := newRecordingCache()
		cache.failOn = 1
		engine := NewPrefetchEngine(api, cache)

		_, err := engine.Run(ctx, nil, PrefetchOpts{PageSize: 10, RateLimit: 1000})
		if err == nil {
			t.Fatal("expected cache write error")
		}
	})

	t.Run("Canceled Context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		api := &tu.MockAPI{EntriesFn: entriesOf(1000, nil)}
		engine := NewPrefetchEngine(api, newRecordingCache())

		if _, err := engine.Run(canceled, nil, PrefetchOpts{PageSize: 10, RateLimit: 1000}); err == nil {
			t.Error("expected error for canceled context")
		}
	})

	t.Run("Progress Updates Are Non-Blocking", func(t *testing.T) {
		api := &tu.MockAPI{EntriesFn: entriesOf(25, nil)}
		engine := NewPrefetchEngine(api, newRecordingCache())

		// Unbuffered channel nobody reads: sends must be dropped, not block.
		prog := make(chan ProgressUpdate)

		result, err := engine.Run(ctx, prog, PrefetchOpts{PageSize: 10, RateLimit: 1000})
		if err != nil {
			t.Fatalf("prefetch failed: %v", err)
		}
		if result.WordsCached != 25 {
			t.Errorf("expected 25 words, got %d", result.WordsCached)
		}
	})

	t.Run("Progress Updates Carry Phases", func(t *testing.T) {
		api := &tu.MockAPI{EntriesFn: entriesOf(5, nil)}
		engine := NewPrefetchEngine(api, newRecordingCache())

		prog := make(chan ProgressUpdate, 32)
		if _, err := engine.Run(ctx, prog, PrefetchOpts{PageSize: 10, RateLimit: 1000}); err != nil {
			t.Fatalf("prefetch failed: %v", err)
		}
		close(prog)

		var phases []Phase
		for update := range prog {
			phases = append(phases, update.Phase)
		}

		if len(phases) == 0 {
			t.Fatal("expected progress updates")
		}
		if phases[len(phases)-1] != PrefetchDone {
			t.Errorf("expected final phase prefetch_done, got %s", phases[len(phases)-1])
		}
	})

	t.Run("Nil Dependencies", func(t *testing.T) {
		if _, err := NewPrefetchEngine(nil, newRecordingCache()).Run(ctx, nil, PrefetchOpts{}); err == nil {
			t.Error("expected error for nil API")
		}
		if _, err := NewPrefetchEngine(&tu.MockAPI{}, nil).Run(ctx, nil, PrefetchOpts{}); err == nil {
			t.Error("expected error for nil cache")
		}
	})
}
