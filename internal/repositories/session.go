package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/shared"
)

// SessionRepository persists the single signed-in session so the bearer
// token survives restarts. The sessions table is constrained to one row
// (slot = 1); Put replaces whatever is there.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a SessionRepository with the given database connection.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Put stores the session, replacing any previous one.
func (r *SessionRepository) Put(session *models.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	query := `
		INSERT INTO sessions (slot, token, user_id, email, name, created_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			email = excluded.email,
			name = excluded.name,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		session.Token,
		session.UserID,
		session.Email,
		session.Name,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Current returns the stored session, or [shared.ErrNoSession] if signed out.
func (r *SessionRepository) Current() (*models.Session, error) {
	query := `
		SELECT token, user_id, email, name, created_at, updated_at
		FROM sessions
		WHERE slot = 1
	`

	var session models.Session
	err := r.db.QueryRow(query).Scan(
		&session.Token,
		&session.UserID,
		&session.Email,
		&session.Name,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &session, nil
}

// Clear signs out by deleting the stored session. Clearing an empty slot is not an error.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE slot = 1"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
