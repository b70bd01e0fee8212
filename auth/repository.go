package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/journal-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// UserRepository is the credential store: it persists user rows and looks
// them up for login.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// PostgresUserRepository implements UserRepository on a pgx pool.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a PostgresUserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts the user. The role is decided inside the statement: the
// first row ever inserted gets admin, every later one gets user. Folding
// the check into the insert keeps the bootstrap designation atomic; a
// separate count-then-insert would race.
func (r *PostgresUserRepository) Create(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (username, email, password, role)
	          VALUES ($1, $2, $3, CASE WHEN EXISTS (SELECT 1 FROM users) THEN 'user' ELSE 'admin' END)
	          RETURNING id, role, created_at`

	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.HashedPassword).
		Scan(&user.ID, &user.Role, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return nil, apperror.NewConflictError("Username already exists", err)
			}
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, apperror.NewConflictError("Email already exists", err)
			}
			return nil, apperror.NewConflictError("User already exists", err)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// GetByEmail looks a user up by exact email match.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, username, email, password, role, created_at
	          FROM users WHERE email = $1`

	var user User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("User not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to get user by email", err)
	}
	return &user, nil
}
