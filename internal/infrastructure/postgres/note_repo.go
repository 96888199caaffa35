package postgres

import (
	"context"
	"fmt"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
	"github.com/AlexHopeIT/notes-servise-test/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	query := `
		INSERT INTO notes (title, content, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, owner_id, created_at`

	row := r.pool.QueryRow(ctx, query, note.Title, note.Content, note.OwnerID)

	var created domain.Note
	err := row.Scan(&created.ID, &created.Title, &created.Content, &created.OwnerID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return &created, nil
}

// ListByOwner orders by id ascending, which matches insertion order for the
// bigserial key.
func (r *NoteRepository) ListByOwner(ctx context.Context, input repository.ListNotesInput) ([]*domain.Note, error) {
	query := `
		SELECT id, title, content, owner_id, created_at
		FROM notes
		WHERE owner_id = $1
		ORDER BY id ASC
		OFFSET $2
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, input.OwnerID, input.Offset, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return n, nil
}
