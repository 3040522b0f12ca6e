package reminder

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed storage for reminders.
//
// Each operation is a single statement and therefore its own implicit
// transaction; callers issuing Add followed by List observe two independent
// transactions. The store relies on SQLite's own file locking for the low
// concurrency it is exposed to.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at dbPath and
// ensures the reminders table exists.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createTable(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reminders (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			text         TEXT    NOT NULL,
			due_date     TEXT    NOT NULL,
			priority     TEXT    NOT NULL DEFAULT 'medium',
			created_at   TEXT    NOT NULL,
			completed    INTEGER NOT NULL DEFAULT 0,
			completed_at TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new reminder and returns its assigned ID. The only
// business rule is that text must be non-empty; priority defaults to
// medium when blank.
func (s *Store) Add(text string, dueDate time.Time, priority string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("reminder text must not be empty")
	}
	if priority == "" {
		priority = PriorityMedium
	}

	createdAt := time.Now().UTC()

	result, err := s.db.Exec(`
		INSERT INTO reminders (text, due_date, priority, created_at)
		VALUES (?, ?, ?, ?)
	`, text, dueDate.UTC().Format(time.RFC3339), priority,
		createdAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to insert reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted ID: %w", err)
	}
	return id, nil
}

// List returns all reminders ordered by due date ascending. Completed
// rows are excluded unless includeCompleted is set.
func (s *Store) List(includeCompleted bool) ([]Reminder, error) {
	query := `
		SELECT id, text, due_date, priority, created_at, completed, completed_at
		FROM reminders ORDER BY due_date ASC
	`
	if !includeCompleted {
		query = `
			SELECT id, text, due_date, priority, created_at, completed, completed_at
			FROM reminders WHERE completed = 0 ORDER BY due_date ASC
		`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// Complete marks a reminder as completed and stamps completed_at.
// The returned bool reports whether a row matched: re-completing an
// already-completed reminder still succeeds.
func (s *Store) Complete(id int64) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := s.db.Exec(`
		UPDATE reminders SET completed = 1, completed_at = ? WHERE id = ?
	`, now, id)
	if err != nil {
		return false, fmt.Errorf("failed to complete reminder: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

// Delete removes a reminder. The returned bool reports whether a row matched.
func (s *Store) Delete(id int64) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete reminder: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

func scanReminders(rows *sql.Rows) ([]Reminder, error) {
	var reminders []Reminder
	for rows.Next() {
		var r Reminder
		var dueDate, createdAt string
		var completed int
		var completedAt sql.NullString

		if err := rows.Scan(&r.ID, &r.Text, &dueDate, &r.Priority,
			&createdAt, &completed, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}

		r.DueDate, _ = time.Parse(time.RFC3339, dueDate)
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		r.Completed = completed != 0
		if completedAt.Valid {
			t, err := time.Parse(time.RFC3339, completedAt.String)
			if err == nil {
				r.CompletedAt = &t
			}
		}

		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}
