package games

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/journal-go/apperror"
)

// Repository persists catalog games.
type Repository interface {
	List(ctx context.Context) ([]*Game, error)
	GetByID(ctx context.Context, id int) (*Game, error)
	Create(ctx context.Context, game *Game) (*Game, error)
	Update(ctx context.Context, id int, title, genre, developer *string, releaseDate *time.Time) (*Game, error)
	Delete(ctx context.Context, id int) (*DeletedGame, error)
}

// PostgresRepository implements Repository on a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every game ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]*Game, error) {
	query := `SELECT id, title, genre, release_date, developer, created_at
	          FROM games ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list games", err)
	}
	defer rows.Close()

	var result []*Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Title, &g.Genre, &g.ReleaseDate, &g.Developer, &g.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan game row", err)
		}
		result = append(result, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read game rows", err)
	}
	return result, nil
}

// GetByID returns a single game.
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Game, error) {
	query := `SELECT id, title, genre, release_date, developer, created_at
	          FROM games WHERE id = $1`

	var g Game
	err := r.db.QueryRow(ctx, query, id).
		Scan(&g.ID, &g.Title, &g.Genre, &g.ReleaseDate, &g.Developer, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Game not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to get game %d", id), err)
	}
	return &g, nil
}

// Create inserts the game and fills in generated fields.
func (r *PostgresRepository) Create(ctx context.Context, game *Game) (*Game, error) {
	query := `INSERT INTO games (title, genre, release_date, developer)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, game.Title, game.Genre, game.ReleaseDate, game.Developer).
		Scan(&game.ID, &game.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create game", err)
	}
	return game, nil
}

// Update applies a partial update. COALESCE keeps the stored value for
// every field passed as nil.
func (r *PostgresRepository) Update(ctx context.Context, id int, title, genre, developer *string, releaseDate *time.Time) (*Game, error) {
	query := `UPDATE games
	          SET title = COALESCE($1, title),
	              genre = COALESCE($2, genre),
	              release_date = COALESCE($3, release_date),
	              developer = COALESCE($4, developer)
	          WHERE id = $5
	          RETURNING id, title, genre, release_date, developer, created_at`

	var g Game
	err := r.db.QueryRow(ctx, query, title, genre, releaseDate, developer, id).
		Scan(&g.ID, &g.Title, &g.Genre, &g.ReleaseDate, &g.Developer, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Game not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to update game %d", id), err)
	}
	return &g, nil
}

// Delete removes the game and returns its minimal projection.
func (r *PostgresRepository) Delete(ctx context.Context, id int) (*DeletedGame, error) {
	query := `DELETE FROM games WHERE id = $1 RETURNING id, title`

	var d DeletedGame
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Game not found", err)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to delete game %d", id), err)
	}
	return &d, nil
}
