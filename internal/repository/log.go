package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Venkat-46/devs-dairy-backend/internal/model"
)

var (
	ErrLogNotFound = errors.New("log entry not found")
	ErrUnknownUser = errors.New("log owner does not exist")
)

// LogRepository persists standup entries in the userlogs table. Every
// mutating statement matches on the (user_id, id) pair in a single query,
// so one user can never touch another user's rows regardless of what the
// layers above decide.
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new LogRepository.
func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Insert adds a new log entry and sets the generated ID on the entry
// struct. Inserting for a nonexistent user fails with ErrUnknownUser via
// the foreign key on user_id.
func (r *LogRepository) Insert(ctx context.Context, entry *model.LogEntry) error {
	query := `INSERT INTO userlogs (user_id, date, yesterday, today, blocker) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		entry.UserID, entry.Date, entry.Yesterday, entry.Today, entry.Blocker,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrUnknownUser
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// ListByUser retrieves all log entries for a user in insertion order.
// A user with no entries yields an empty slice, not an error.
func (r *LogRepository) ListByUser(ctx context.Context, userID int64) ([]model.LogEntry, error) {
	query := `SELECT id, user_id, date, yesterday, today, blocker FROM userlogs
		WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Yesterday, &e.Today, &e.Blocker); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetOne retrieves a single log entry by owner and log id.
func (r *LogRepository) GetOne(ctx context.Context, userID, logID int64) (*model.LogEntry, error) {
	query := `SELECT id, user_id, date, yesterday, today, blocker FROM userlogs
		WHERE user_id = ? AND id = ?`

	entry := &model.LogEntry{}
	err := r.db.QueryRowContext(ctx, query, userID, logID).Scan(
		&entry.ID, &entry.UserID, &entry.Date, &entry.Yesterday, &entry.Today, &entry.Blocker,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	return entry, nil
}

// Update replaces all four content fields of the entry matching both
// userID and logID. The joint match runs as one statement, so there is no
// window between an existence check and the write.
func (r *LogRepository) Update(ctx context.Context, entry *model.LogEntry) error {
	query := `UPDATE userlogs SET date = ?, yesterday = ?, today = ?, blocker = ?
		WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query,
		entry.Date, entry.Yesterday, entry.Today, entry.Blocker,
		entry.UserID, entry.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrLogNotFound
	}

	return nil
}

// Delete permanently removes the entry matching both userID and logID,
// with the same joint-match semantics as Update.
func (r *LogRepository) Delete(ctx context.Context, userID, logID int64) error {
	query := `DELETE FROM userlogs WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, logID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrLogNotFound
	}

	return nil
}
