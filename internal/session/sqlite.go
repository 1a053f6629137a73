package session

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/sparcom/portal/internal/api"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore provides SQLite-backed session storage, so sessions survive
// process restarts.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the session database at path and applies
// pending migrations.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// WAL keeps concurrent page reads from blocking on session writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func applyMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Put stores a session.
func (s *SQLiteStore) Put(session *Session) {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		userJSON = []byte("null")
	}

	_, _ = s.db.Exec(`
		INSERT OR REPLACE INTO sessions (id, provider, token, refresh_token, user_json, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, session.ID, string(session.Provider), session.Token, session.RefreshToken, string(userJSON), session.ExpiresAt.Unix())
}

// Get retrieves a valid session. A profile blob that fails to parse is
// treated as an absent user, not an error.
func (s *SQLiteStore) Get(id string) (*Session, bool) {
	var provider, token, refreshToken, userJSON string
	var expiresAt int64

	err := s.db.QueryRow(`
		SELECT provider, token, refresh_token, user_json, expires_at FROM sessions WHERE id = ?
	`, id).Scan(&provider, &token, &refreshToken, &userJSON, &expiresAt)
	if err != nil {
		return nil, false
	}

	session := &Session{
		ID:           id,
		Provider:     Provider(provider),
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Unix(expiresAt, 0),
	}

	var user *api.User
	if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
		session.User = user
	}

	if session.IsExpired() {
		s.Delete(id)
		return nil, false
	}

	return session, true
}

// SetUser updates the cached profile of an existing session.
func (s *SQLiteStore) SetUser(id string, user *api.User) {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return
	}
	_, _ = s.db.Exec(`UPDATE sessions SET user_json = ? WHERE id = ?`, string(userJSON), id)
}

// Delete removes a session.
func (s *SQLiteStore) Delete(id string) {
	_, _ = s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
