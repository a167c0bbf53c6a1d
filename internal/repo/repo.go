package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	CreateNote(ctx context.Context, n Note) error
	ListNotes(ctx context.Context, limit int) ([]Note, error)
	Ping(ctx context.Context) error
}

type PostgresNoteRepository struct {
	db *sql.DB
}

func NewPostgresNoteDB(db *sql.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{db: db}
}

const schema = `CREATE TABLE IF NOT EXISTS notes (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	body       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate creates the notes table if it does not exist.
func (r *PostgresNoteRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return nil
}

func (r *PostgresNoteRepository) CreateNote(ctx context.Context, n Note) error {
	query := "INSERT INTO notes (id, name, email, body, created_at) VALUES ($1, $2, $3, $4, $5)"
	_, err := r.db.ExecContext(ctx, query, n.ID, n.Name, n.Email, n.Body, n.CreatedAt)
	return err
}

func (r *PostgresNoteRepository) ListNotes(ctx context.Context, limit int) ([]Note, error) {
	query := "SELECT id, name, email, body, created_at FROM notes ORDER BY created_at DESC LIMIT $1"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Name, &n.Email, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *PostgresNoteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
