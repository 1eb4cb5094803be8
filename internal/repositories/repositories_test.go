package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestSessionRepository(t *testing.T) {
	t.Run("Put And Current", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		session := &models.Session{
			Token:  "tok-1",
			UserID: "u1",
			Email:  "a@b.c",
			Name:   "Ada",
		}

		if err := repo.Put(session); err != nil {
			t.Fatalf("failed to store session: %v", err)
		}

		loaded, err := repo.Current()
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}

		if loaded.Token != "tok-1" || loaded.Email != "a@b.c" || loaded.UserID != "u1" {
			t.Errorf("unexpected session %+v", loaded)
		}
		if loaded.CreatedAt.IsZero() || loaded.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be set")
		}
	})

	t.Run("Put Replaces Existing Slot", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		first := &models.Session{Token: "tok-1", UserID: "u1", Email: "a@b.c"}
		second := &models.Session{Token: "tok-2", UserID: "u2", Email: "x@y.z"}

		if err := repo.Put(first); err != nil {
			t.Fatalf("failed to store first session: %v", err)
		}
		if err := repo.Put(second); err != nil {
			t.Fatalf("failed to store second session: %v", err)
		}

		loaded, err := repo.Current()
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}
		if loaded.Token != "tok-2" || loaded.Email != "x@y.z" {
			t.Errorf("expected second session to win, got %+v", loaded)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
			t.Fatalf("failed to count sessions: %v", err)
		}
		if count != 1 {
			t.Errorf("expected a single session row, got %d", count)
		}
	})

	t.Run("Current Without Session", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		if _, err := repo.Current(); !errors.Is(err, shared.ErrNoSession) {
			t.Errorf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		session := &models.Session{Token: "tok-1", UserID: "u1", Email: "a@b.c"}
		if err := repo.Put(session); err != nil {
			t.Fatalf("failed to store session: %v", err)
		}

		if err := repo.Clear(); err != nil {
			t.Fatalf("failed to clear session: %v", err)
		}
		if _, err := repo.Current(); !errors.Is(err, shared.ErrNoSession) {
			t.Errorf("expected ErrNoSession after clear, got %v", err)
		}

		// Clearing an already empty slot is fine.
		if err := repo.Clear(); err != nil {
			t.Errorf("expected idempotent clear, got %v", err)
		}
	})

	t.Run("Put Rejects Invalid Session", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		if err := repo.Put(&models.Session{Token: "", Email: "a@b.c"}); err == nil {
			t.Error("expected validation error for empty token")
		}
		if err := repo.Put(&models.Session{Token: "tok", Email: "  "}); err == nil {
			t.Error("expected validation error for empty email")
		}
	})
}

func TestWordCacheRepository(t *testing.T) {
	t.Run("Create And Get", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWordCacheRepository(db)

		word := models.NewCachedWord("cat")
		if err := repo.Create(word); err != nil {
			t.Fatalf("failed to create cached word: %v", err)
		}

		if word.ID() == "" {
			t.Error("word ID should be set after creation")
		}
		if word.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", word.Sequence())
		}

		loaded, err := repo.Get("cat")
		if err != nil {
			t.Fatalf("failed to get cached word: %v", err)
		}
		if loaded.Word() != "cat" || loaded.ID() != word.ID() {
			t.Errorf("unexpected cached word %+v", loaded)
		}
	})

	t.Run("Get Missing Word", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWordCacheRepository(db)

		if _, err := repo.Get("ghost"); !errors.Is(err, shared.ErrWordNotFound) {
			t.Errorf("expected ErrWordNotFound, got %v", err)
		}
	})

	t.Run("Duplicate Create Is No-Op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWordCacheRepository(db)

		if err := repo.Create(models.NewCachedWord("cat")); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		dup := models.NewCachedWord("cat")
		if err := repo.Create(dup); err != nil {
			t.Fatalf("duplicate create should not error: %v", err)
		}

		// A skipped duplicate must not be stamped with an identity.
		if dup.ID() != "" || dup.Sequence() != 0 {
			t.Errorf("duplicate was stamped: id=%q sequence=%d", dup.ID(), dup.Sequence())
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 cached word, got %d", count)
		}

		// Nor may it burn a sequence number: the next new word follows
		// contiguously.
		next := models.NewCachedWord("dog")
		if err := repo.Create(next); err != nil {
			t.Fatalf("create after duplicate failed: %v", err)
		}
		if next.Sequence() != 2 {
			t.Errorf("expected sequence 2 after one duplicate, got %d", next.Sequence())
		}
	})

	t.Run("List Preserves Insertion Order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWordCacheRepository(db)

		batch := []models.WordSummary{{Word: "alpha"}, {Word: "beta"}, {Word: "gamma"}}
		if err := repo.CreateBatch(batch); err != nil {
			t.Fatalf("failed to create batch: %v", err)
		}

		words, err := repo.List(10, 0)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(words) != 3 {
			t.Fatalf("expected 3 words, got %d", len(words))
		}
		for i, want := range []string{"alpha", "beta", "gamma"} {
			if words[i].Word() != want {
				t.Errorf("words[%d] = %s, want %s", i, words[i].Word(), want)
			}
		}

		// Pagination over the cache.
		page, err := repo.List(2, 2)
		if err != nil {
			t.Fatalf("failed to list offset page: %v", err)
		}
		if len(page) != 1 || page[0].Word() != "gamma" {
			t.Errorf("unexpected offset page %v", page)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWordCacheRepository(db)

		if err := repo.Create(models.NewCachedWord("  ")); err == nil {
			t.Error("expected validation error for empty word")
		}
	})

	t.Run("Clear Resets Sequence", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWordCacheRepository(db)

		if err := repo.CreateBatch([]models.WordSummary{{Word: "a"}, {Word: "b"}}); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		if err := repo.Clear(); err != nil {
			t.Fatalf("failed to clear cache: %v", err)
		}

		count, _ := repo.Count()
		if count != 0 {
			t.Errorf("expected empty cache, got %d rows", count)
		}

		fresh := models.NewCachedWord("c")
		if err := repo.Create(fresh); err != nil {
			t.Fatalf("failed to create after clear: %v", err)
		}
		if fresh.Sequence() != 1 {
			t.Errorf("expected sequence restart at 1, got %d", fresh.Sequence())
		}
	})
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)

	for want := int64(1); want <= 3; want++ {
		got, err := NextSequence(db, "word_cache")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		if got != want {
			t.Errorf("expected sequence %d, got %d", want, got)
		}
	}
}
