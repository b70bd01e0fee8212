package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/auth"
)

// Repository is the read/administration side of the user store. Creation
// lives in the auth package; everything here operates on existing rows.
type Repository interface {
	List(ctx context.Context) ([]*auth.User, error)
	GetByID(ctx context.Context, id int) (*auth.User, error)
	UpdateRole(ctx context.Context, id int, role auth.Role) (*auth.User, error)
	Delete(ctx context.Context, id int) (*DeletedUser, error)
	CountEntries(ctx context.Context, userID int) (int, error)
}

// PostgresRepository implements Repository on a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every profile ordered by id. Password hashes are not read.
func (r *PostgresRepository) List(ctx context.Context) ([]*auth.User, error) {
	query := `SELECT id, username, email, role, created_at FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	var result []*auth.User
	for rows.Next() {
		var u auth.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user row", err)
		}
		result = append(result, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read user rows", err)
	}
	return result, nil
}

// GetByID returns a single profile.
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*auth.User, error) {
	query := `SELECT id, username, email, role, created_at FROM users WHERE id = $1`

	var u auth.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("User not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to get user %d", id), err)
	}
	return &u, nil
}

// UpdateRole sets the role atomically and returns the updated profile.
func (r *PostgresRepository) UpdateRole(ctx context.Context, id int, role auth.Role) (*auth.User, error) {
	query := `UPDATE users SET role = $1 WHERE id = $2
	          RETURNING id, username, email, role, created_at`

	var u auth.User
	err := r.db.QueryRow(ctx, query, role, id).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("User not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to update role for user %d", id), err)
	}
	return &u, nil
}

// Delete removes the row and returns the minimal projection for
// confirmation. Journal entries go with it via ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id int) (*DeletedUser, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING id, username, email`

	var d DeletedUser
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Username, &d.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("User not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to delete user %d", id), err)
	}
	return &d, nil
}

// CountEntries counts the user's journal entries.
func (r *PostgresRepository) CountEntries(ctx context.Context, userID int) (int, error) {
	query := `SELECT COUNT(*) FROM journal_entries WHERE user_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, apperror.NewDatabaseError("failed to count journal entries", err)
	}
	return count, nil
}
