package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/shared"
)

// WordCacheRepository persists dictionary entries mirrored by the prefetch
// task, ordered by an atomically generated sequence so the cached list keeps
// server order.
type WordCacheRepository struct {
	db *sql.DB
}

// NewWordCacheRepository creates a WordCacheRepository with the given database connection.
func NewWordCacheRepository(db *sql.DB) *WordCacheRepository {
	return &WordCacheRepository{db: db}
}

// Create inserts a cached word with generated ID and sequence. Re-caching a
// word that is already present is a no-op rather than an error, so repeated
// prefetch runs converge.
func (r *WordCacheRepository) Create(word *models.CachedWord) error {
	if err := word.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Check before consuming a sequence number so duplicates neither leave
	// gaps in the cache order nor stamp the model with an unused identity.
	var existing int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM word_cache WHERE word = ?", word.Word()).Scan(&existing); err != nil {
		return fmt.Errorf("failed to check cached word: %w", err)
	}
	if existing > 0 {
		return nil
	}

	sequence, err := NextSequence(r.db, "word_cache")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	word.SetID(id)
	word.SetSequence(sequence)

	query := `
		INSERT INTO word_cache (id, sequence, word, cached_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (word) DO NOTHING
	`

	if _, err := r.db.Exec(query, id, sequence, word.Word(), word.CachedAt()); err != nil {
		return fmt.Errorf("failed to insert cached word: %w", err)
	}

	return nil
}

// CreateBatch inserts a batch of words one by one, preserving batch order
// in the sequence numbers. It stops at the first failed insert.
func (r *WordCacheRepository) CreateBatch(words []models.WordSummary) error {
	for _, summary := range words {
		if err := r.Create(models.NewCachedWord(summary.Word)); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a cached word by its word string.
func (r *WordCacheRepository) Get(word string) (*models.CachedWord, error) {
	query := `
		SELECT id, sequence, word, cached_at
		FROM word_cache
		WHERE word = ?
	`

	var (
		id       string
		sequence int64
		stored   string
		cachedAt time.Time
	)
	err := r.db.QueryRow(query, shared.NormalizeWord(word)).Scan(&id, &sequence, &stored, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s not in cache", shared.ErrWordNotFound, word)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cached word: %w", err)
	}

	return models.RestoreCachedWord(id, sequence, stored, cachedAt), nil
}

// List returns up to limit cached words starting at offset, in cache order.
func (r *WordCacheRepository) List(limit, offset int) ([]*models.CachedWord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, sequence, word, cached_at
		FROM word_cache
		ORDER BY sequence
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached words: %w", err)
	}
	defer rows.Close()

	var words []*models.CachedWord
	for rows.Next() {
		var (
			id       string
			sequence int64
			stored   string
			cachedAt time.Time
		)
		if err := rows.Scan(&id, &sequence, &stored, &cachedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cached word: %w", err)
		}
		words = append(words, models.RestoreCachedWord(id, sequence, stored, cachedAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached words: %w", err)
	}

	return words, nil
}

// Count returns the number of cached words.
func (r *WordCacheRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM word_cache").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cached words: %w", err)
	}
	return count, nil
}

// Clear empties the cache and resets the sequence counter.
func (r *WordCacheRepository) Clear() error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM word_cache"); err != nil {
		return fmt.Errorf("failed to clear word cache: %w", err)
	}
	if _, err := tx.Exec("UPDATE word_cache_sequence SET value = 0 WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to reset sequence: %w", err)
	}

	return tx.Commit()
}
