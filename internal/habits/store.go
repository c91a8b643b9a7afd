// Package habits persists habit streaks in a local SQLite database.
package habits

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

// Store is a SQLite-backed habit tracker.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the habit database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create habit db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open habit db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping habit db: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate habit db: %w", err)
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetClock overrides the clock. Used in tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS habits (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			name              TEXT NOT NULL UNIQUE,
			streak            INTEGER NOT NULL DEFAULT 0,
			last_completed_at TIMESTAMP,
			time_of_day       TEXT NOT NULL DEFAULT 'anytime'
		)`)
	return err
}

// List returns all tracked habits ordered by name. A streak lapses when the
// habit was last completed before yesterday; lapsed streaks read as zero.
func (s *Store) List(ctx context.Context) ([]source.Habit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, streak, last_completed_at, time_of_day FROM habits ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	now := s.now()
	var habits []source.Habit
	for rows.Next() {
		var (
			id        int64
			h         source.Habit
			completed sql.NullTime
		)
		if err := rows.Scan(&id, &h.Name, &h.Streak, &completed, &h.TimeOfDay); err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		h.ID = fmt.Sprintf("%d", id)
		if completed.Valid {
			t := completed.Time
			h.LastCompletedAt = &t
			if streakLapsed(t, now) {
				h.Streak = 0
			}
		} else {
			h.Streak = 0
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// Add registers a new habit. timeOfDay is one of morning, afternoon, evening
// or anytime; empty defaults to anytime.
func (s *Store) Add(ctx context.Context, name, timeOfDay string) error {
	if name == "" {
		return fmt.Errorf("habit name required")
	}
	switch timeOfDay {
	case "":
		timeOfDay = "anytime"
	case "morning", "afternoon", "evening", "anytime":
	default:
		return fmt.Errorf("invalid time of day %q", timeOfDay)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO habits (name, time_of_day) VALUES (?, ?)`, name, timeOfDay)
	if err != nil {
		return fmt.Errorf("add habit %q: %w", name, err)
	}
	return nil
}

// Complete marks the habit done for today. Completing on consecutive days
// extends the streak; a gap resets it to one. Completing twice in one day is
// a no-op for the streak.
func (s *Store) Complete(ctx context.Context, name string) error {
	now := s.now()

	var (
		streak    int
		completed sql.NullTime
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT streak, last_completed_at FROM habits WHERE name = ?`, name).
		Scan(&streak, &completed)
	if err == sql.ErrNoRows {
		return fmt.Errorf("unknown habit %q", name)
	}
	if err != nil {
		return fmt.Errorf("load habit %q: %w", name, err)
	}

	switch {
	case !completed.Valid:
		streak = 1
	case sameDay(completed.Time, now):
		// already counted today
	case sameDay(completed.Time, now.AddDate(0, 0, -1)):
		streak++
	default:
		streak = 1
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE habits SET streak = ?, last_completed_at = ? WHERE name = ?`,
		streak, now, name)
	if err != nil {
		return fmt.Errorf("complete habit %q: %w", name, err)
	}
	return nil
}

// Remove deletes a habit and its streak.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM habits WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("remove habit %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("unknown habit %q", name)
	}
	return nil
}

// streakLapsed reports whether the last completion is older than yesterday.
func streakLapsed(last, now time.Time) bool {
	yesterday := now.AddDate(0, 0, -1)
	return !sameDay(last, now) && !sameDay(last, yesterday) && last.Before(now)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
