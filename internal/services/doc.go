// Package services implements the [API] interface over the dictionary REST backend.
//
// # API Interface
//
// All backend operations go through a single abstraction so the CLI runner,
// the TUI, and the prefetch engine stay testable with a double.
//
// # Client Implementation
//
// [Client] builds requests against a configured base URL and language,
// attaches `Authorization: Bearer <token>` when a token is present, and
// treats any non-2xx status as an error. Responses decode into the typed
// DTOs in the models package; word list rows arrive as nested
// `{fields:{word,_id}}` objects and are flattened to [models.WordSummary].
//
// The token is explicit construction state. [Client.WithToken] derives an
// authenticated client after signin; nothing reads a process-global.
//
// # Error Handling
//
// Errors wrap typed sentinels from the shared package:
//   - [shared.ErrNotAuthenticated] : 401/403 from a protected endpoint
//   - [shared.ErrWordNotFound] : 404 or an empty detail result
//   - [shared.ErrAPIRequest] : transport failure or other non-2xx status
//   - [shared.ErrAuthFailed] : signin rejected or returned no token
//
// Callers collapse these into one static user-facing message per list; the
// distinction exists for logs and tests, not for the UI.
package services
