package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase (page index for prefetch)
	Total   int    // Total steps, 0 when unbounded
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchEntries Phase = iota
	CacheWords
	PrefetchDone
)

func (p Phase) String() string {
	switch p {
	case FetchEntries:
		return "fetch_entries"
	case CacheWords:
		return "cache_words"
	case PrefetchDone:
		return "prefetch_done"
	default:
		return ""
	}
}

func fetchPageUpdate(page, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchEntries,
		Step:    page,
		Total:   total,
		Message: fmt.Sprintf("Fetching dictionary page %d...", page),
	}
}

func cachePageUpdate(page, total, batchSize, cachedSoFar int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CacheWords,
		Step:    page,
		Total:   total,
		Message: fmt.Sprintf("Page %d: cached %d words (%d total)", page, batchSize, cachedSoFar),
	}
}

func prefetchFailedUpdate(page, total int, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchEntries,
		Step:    page,
		Total:   total,
		Message: fmt.Sprintf("✗ page %d: %v", page, err),
	}
}

func prefetchDoneUpdate(result *PrefetchResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PrefetchDone,
		Step:    result.PagesFetched,
		Total:   result.PagesFetched,
		Message: fmt.Sprintf("✓ Cached %d words from %d pages", result.WordsCached, result.PagesFetched),
		Data:    result,
	}
}
