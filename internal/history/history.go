// Package history handles SQLite persistence of completed tests.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/keydrill/keydrill/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the session log.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			user TEXT NOT NULL,
			wpm REAL NOT NULL,
			accuracy REAL NOT NULL,
			chars_typed INTEGER NOT NULL,
			words_typed INTEGER NOT NULL,
			mistakes INTEGER NOT NULL,
			best_streak INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult stores one completed test.
func (s *Store) InsertResult(ctx context.Context, res model.Result) (int64, error) {
	r, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, mode, user, wpm, accuracy, chars_typed, words_typed, mistakes, best_streak, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.StartedAt.Format(time.RFC3339Nano),
		res.EndedAt.Format(time.RFC3339Nano),
		res.Mode.String(),
		res.User,
		res.WPM,
		res.Accuracy,
		res.CharsTyped,
		res.WordsTyped,
		res.Mistakes,
		res.BestStreak,
		res.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return r.LastInsertId()
}

// ListSessions returns session rows filtered by stats config, oldest first.
func (s *Store) ListSessions(ctx context.Context, cfg model.StatsConfig) ([]model.SessionRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Mode != model.ModeNone {
		clauses = append(clauses, "mode = ?")
		args = append(args, cfg.Mode.String())
	}
	if cfg.User != "" {
		clauses = append(clauses, "user = ?")
		args = append(args, cfg.User)
	}
	query := fmt.Sprintf(`SELECT id, ended_at, mode, user, wpm, accuracy, chars_typed, words_typed, mistakes, best_streak, duration_ms
		FROM sessions
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionRecord
	for rows.Next() {
		var rec model.SessionRecord
		var endedAt, mode string
		if err := rows.Scan(&rec.ID, &endedAt, &mode, &rec.User, &rec.WPM, &rec.Accuracy, &rec.CharsTyped, &rec.WordsTyped, &rec.Mistakes, &rec.BestStreak, &rec.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		rec.EndedAt = parsed
		rec.Mode = model.ParseMode(mode)
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	return sessions, nil
}
