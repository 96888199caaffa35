package repository

import (
	"context"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
)

type ListNotesInput struct {
	OwnerID int64
	Offset  int
	Limit   int
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	// ListByOwner returns the owner's notes in insertion order.
	ListByOwner(ctx context.Context, input ListNotesInput) ([]*domain.Note, error)
	Count(ctx context.Context) (int64, error)
}
