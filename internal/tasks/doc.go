// Package tasks orchestrates long-running operations with real-time progress reporting.
//
// # Prefetch
//
// [PrefetchEngine.Run] walks the dictionary word list page by page through a
// pagination cursor, storing each batch into the local word cache before
// requesting the next page. A [rate.Limiter] spaces the requests so a full
// walk stays polite to the backend.
//
// # Progress Reporting
//
// All operations use non-blocking channel sends for progress updates: the
// [ProgressUpdate] struct carries phase, step counters, and a display
// message, and sends use select with default so a slow consumer drops
// events instead of stalling the walk.
package tasks
