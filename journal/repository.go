package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/journal-go/apperror"
)

// Repository persists journal entries. Ownership decisions live in the
// service; the repository only reads and writes rows.
type Repository interface {
	ListByOwner(ctx context.Context, userID int) ([]*Entry, error)
	ListAll(ctx context.Context) ([]*Entry, error)
	GetByID(ctx context.Context, id int) (*Entry, error)
	Create(ctx context.Context, entry *Entry) (*Entry, error)
	Update(ctx context.Context, id int, req UpdateEntryRequest) (*Entry, error)
	Delete(ctx context.Context, id int) (*DeletedEntry, error)
}

// PostgresRepository implements Repository on a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns the user's entries, newest first, with the owner's
// username joined in.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int) ([]*Entry, error) {
	query := `SELECT je.id, je.user_id, je.title, je.content, je.mood, je.tags,
	                 je.created_at, je.updated_at, u.username
	          FROM journal_entries je
	          JOIN users u ON je.user_id = u.id
	          WHERE je.user_id = $1
	          ORDER BY je.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list journal entries", err)
	}
	defer rows.Close()

	var result []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.Tags,
			&e.CreatedAt, &e.UpdatedAt, &e.Username); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan journal entry row", err)
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read journal entry rows", err)
	}
	return result, nil
}

// ListAll returns every entry with owner username and email, newest first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Entry, error) {
	query := `SELECT je.id, je.user_id, je.title, je.content, je.mood, je.tags,
	                 je.created_at, je.updated_at, u.username, u.email
	          FROM journal_entries je
	          JOIN users u ON je.user_id = u.id
	          ORDER BY je.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list all journal entries", err)
	}
	defer rows.Close()

	var result []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.Tags,
			&e.CreatedAt, &e.UpdatedAt, &e.Username, &e.Email); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan journal entry row", err)
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read journal entry rows", err)
	}
	return result, nil
}

// GetByID returns a single entry with the owner's username.
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Entry, error) {
	query := `SELECT je.id, je.user_id, je.title, je.content, je.mood, je.tags,
	                 je.created_at, je.updated_at, u.username
	          FROM journal_entries je
	          JOIN users u ON je.user_id = u.id
	          WHERE je.id = $1`

	var e Entry
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.UserID, &e.Title, &e.Content,
		&e.Mood, &e.Tags, &e.CreatedAt, &e.UpdatedAt, &e.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Journal entry not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to get journal entry %d", id), err)
	}
	return &e, nil
}

// Create inserts the entry and fills in generated fields.
func (r *PostgresRepository) Create(ctx context.Context, entry *Entry) (*Entry, error) {
	query := `INSERT INTO journal_entries (user_id, title, content, mood, tags)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Title, entry.Content, entry.Mood, entry.Tags).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create journal entry", err)
	}
	return entry, nil
}

// Update applies a partial update. COALESCE keeps the stored value for
// every field the request left unset.
func (r *PostgresRepository) Update(ctx context.Context, id int, req UpdateEntryRequest) (*Entry, error) {
	query := `UPDATE journal_entries
	          SET title = COALESCE($1, title),
	              content = COALESCE($2, content),
	              mood = COALESCE($3, mood),
	              tags = COALESCE($4, tags),
	              updated_at = CURRENT_TIMESTAMP
	          WHERE id = $5
	          RETURNING id, user_id, title, content, mood, tags, created_at, updated_at`

	var e Entry
	err := r.db.QueryRow(ctx, query, req.Title, req.Content, req.Mood, req.Tags, id).
		Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.Tags, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Journal entry not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to update journal entry %d", id), err)
	}
	return &e, nil
}

// Delete removes the entry and returns its minimal projection.
func (r *PostgresRepository) Delete(ctx context.Context, id int) (*DeletedEntry, error) {
	query := `DELETE FROM journal_entries WHERE id = $1 RETURNING id, title`

	var d DeletedEntry
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Journal entry not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to delete journal entry %d", id), err)
	}
	return &d, nil
}
