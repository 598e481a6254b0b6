// Package storage keeps a journal of finished rounds in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the journal lives as long as
// the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoSession is returned when a round has no session id.
var ErrNoSession = errors.New("storage: round without session id")

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// Round is one finished round: the board was reset or the player left
// through the finish dialog.
type Round struct {
	ID        int64
	SessionID string
	Player    string // SSH user or "local"
	Turns     int
	Seconds   int64
	CreatedAt time.Time
}

// Stats aggregates every round in the journal.
type Stats struct {
	Rounds    int
	Turns     int
	Seconds   int64
	BestTurns int
}

// OpenMemory opens an empty in-memory journal.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to ":memory:" gets its own database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			turns INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The journal is lost.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.SessionID == "" {
		return 0, ErrNoSession
	}
	result, err := s.db.Exec(
		"INSERT INTO rounds (session_id, player, turns, seconds) VALUES (?, ?, ?, ?)",
		r.SessionID, r.Player, r.Turns, r.Seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRounds returns the last limit rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, session_id, player, turns, seconds, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionRounds returns the rounds of one session in the order played.
func (s *Store) SessionRounds(sessionID string) ([]Round, error) {
	return s.query(
		`SELECT id, session_id, player, turns, seconds, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
}

// Stats returns totals over the whole journal.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(turns), 0), COALESCE(SUM(seconds), 0), COALESCE(MAX(turns), 0)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.Turns, &st.Seconds, &st.BestTurns)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

func (s *Store) query(q string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Player, &r.Turns, &r.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse(time.DateTime, v); err == nil {
				r.CreatedAt = parsed
			}
		case []byte:
			if parsed, err := time.Parse(time.DateTime, string(v)); err == nil {
				r.CreatedAt = parsed
			}
		}
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}
