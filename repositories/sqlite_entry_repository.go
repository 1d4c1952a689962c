package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/petition-desk/models"
)

// sqliteEntryRepository implements EntryRepository on the students table.
// created_at is stored as Unix nanoseconds so ordering is numeric.
type sqliteEntryRepository struct {
	db *sql.DB
}

// NewSQLiteEntryRepository creates a new entry repository for SQLite
func NewSQLiteEntryRepository(db *sql.DB) EntryRepository {
	return &sqliteEntryRepository{db: db}
}

// Create inserts a new entry with a generated UUID
func (r *sqliteEntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	query := `
		INSERT INTO students (id, afn, year, branch, comment, form_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	id := uuid.NewString()
	entry.CreatedAt = entry.CreatedAt.UTC()

	_, err := r.db.ExecContext(ctx, query,
		id,
		entry.AFN,
		entry.Year,
		entry.Branch,
		entry.Comment,
		entry.FormType,
		entry.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	entry.ID = id
	return nil
}

// ForEachNewestFirst streams entries ordered by created_at descending
func (r *sqliteEntryRepository) ForEachNewestFirst(ctx context.Context, fn func(*models.Entry) error) error {
	query := `
		SELECT id, afn, year, branch, comment, form_type, created_at
		FROM students
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.Entry
		var createdAt sql.NullInt64

		err := rows.Scan(
			&entry.ID,
			&entry.AFN,
			&entry.Year,
			&entry.Branch,
			&entry.Comment,
			&entry.FormType,
			&createdAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan entry: %w", err)
		}

		if createdAt.Valid {
			entry.CreatedAt = time.Unix(0, createdAt.Int64).UTC()
		}

		if err := fn(&entry); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating entries: %w", err)
	}
	return nil
}

// Count returns the total number of entries
func (r *sqliteEntryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// CountByFormType returns the number of entries with exactly this form type
func (r *sqliteEntryRepository) CountByFormType(ctx context.Context, formType string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students WHERE form_type = ?`, formType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s entries: %w", formType, err)
	}
	return count, nil
}
