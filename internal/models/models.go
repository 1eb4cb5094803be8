package models

import (
	"fmt"
	"strings"
	"time"
)

// Model defines the base interface for all persistent models in the client.
// Implementations include Session and CachedWord.
type Model interface {
	ID() string      // ID returns the unique identifier for this model
	Validate() error // Validate checks if the model's data is valid and returns an error if not
}

// WordSummary represents one entry in the word list.
type WordSummary struct {
	Word string `json:"word"`
}

// Phonetic represents a pronunciation hint with optional audio URL.
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Definition represents a single definition with an optional usage example.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Meaning groups definitions under a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// WordDetail represents the full dictionary entry for a word.
type WordDetail struct {
	Word      string     `json:"word"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

// FavoriteEntry represents a favorited word with the time it was added.
type FavoriteEntry struct {
	Word  string `json:"word"`
	Added string `json:"added"`
}

// HistoryEntry represents a previously viewed word with the time it was viewed.
type HistoryEntry struct {
	Word  string `json:"word"`
	Added string `json:"added"`
}

// User represents the authenticated user returned by signin.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PageMeta carries the pagination bookkeeping fields the API returns alongside results.
type PageMeta struct {
	TotalDocs  int  `json:"totalDocs"`
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Session is the single persisted authentication slot: a bearer token plus
// the user it belongs to. There is at most one session at a time.
type Session struct {
	Token     string
	UserID    string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ID returns the session's identifier (its owner, since the slot is singular).
func (s *Session) ID() string { return s.UserID }

// Validate checks that the session carries a token and an owner.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Token) == "" {
		return fmt.Errorf("session token must not be empty")
	}
	if strings.TrimSpace(s.Email) == "" {
		return fmt.Errorf("session email must not be empty")
	}
	return nil
}

// CachedWord is a locally mirrored dictionary entry written by the prefetch task.
type CachedWord struct {
	id       string
	sequence int64
	word     string
	cachedAt time.Time
}

// NewCachedWord creates a cache row for the given word, stamped now.
// The word is lowercased and trimmed so cache lookups match URL paths.
func NewCachedWord(word string) *CachedWord {
	return &CachedWord{
		word:     strings.ToLower(strings.TrimSpace(word)),
		cachedAt: time.Now().UTC(),
	}
}

// RestoreCachedWord rebuilds a CachedWord from its persisted columns.
func RestoreCachedWord(id string, sequence int64, word string, cachedAt time.Time) *CachedWord {
	return &CachedWord{id: id, sequence: sequence, word: word, cachedAt: cachedAt}
}

func (w *CachedWord) ID() string          { return w.id }
func (w *CachedWord) Sequence() int64     { return w.sequence }
func (w *CachedWord) Word() string        { return w.word }
func (w *CachedWord) CachedAt() time.Time { return w.cachedAt }

// SetID assigns the generated row ID. Called by the repository on insert.
func (w *CachedWord) SetID(id string) { w.id = id }

// SetSequence assigns the atomically generated sequence number.
func (w *CachedWord) SetSequence(sequence int64) { w.sequence = sequence }

// Validate checks the "word is a non-empty string" invariant.
func (w *CachedWord) Validate() error {
	if strings.TrimSpace(w.word) == "" {
		return fmt.Errorf("cached word must not be empty")
	}
	return nil
}
