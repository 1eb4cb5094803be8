// Package models defines the data model for the dictionary browsing client.
//
// Most types are plain DTOs mirrored from the dictionary API's JSON responses
// ([WordSummary], [WordDetail], [FavoriteEntry], [HistoryEntry], [User]).
// They have request/response lifetime and no identity beyond the word string.
//
// Persisted types ([Session], [CachedWord]) implement the [Model] interface
// and are stored in SQLite via the repositories package.
package models
