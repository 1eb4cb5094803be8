// Package repositories implements SQLite persistence for the client's local state.
//
// Key Implementations:
//   - [SessionRepository] : the single signed-in session (bearer token slot),
//     the terminal analogue of the web app's local storage
//   - [WordCacheRepository] : dictionary entries mirrored by the prefetch
//     task, with atomic sequence generation for stable ordering
//
// Sequence numbers come from per-table counter tables via [NextSequence] and
// are independent of UUIDs and timestamps.
package repositories
