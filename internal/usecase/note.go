package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
	"github.com/AlexHopeIT/notes-servise-test/internal/repository"
	"github.com/AlexHopeIT/notes-servise-test/internal/spell"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type NoteUsecase struct {
	notes   repository.NoteRepository
	speller spell.Checker
	logger  *slog.Logger
}

func NewNoteUsecase(notes repository.NoteRepository, speller spell.Checker, logger *slog.Logger) *NoteUsecase {
	return &NoteUsecase{
		notes:   notes,
		speller: speller,
		logger:  logger.With("component", "note_usecase"),
	}
}

// CreateNote stores a note owned by ownerID. Spell correction is best
// effort: if the speller fails, the original content is kept.
func (u *NoteUsecase) CreateNote(ctx context.Context, ownerID int64, title, content string) (*domain.Note, error) {
	corrected, err := u.speller.Correct(ctx, content)
	if err != nil {
		u.logger.WarnContext(ctx, "spell check failed, keeping original content", "error", err)
		corrected = content
	}

	note := &domain.Note{
		Title:   title,
		Content: corrected,
		OwnerID: ownerID,
	}

	created, err := u.notes.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return created, nil
}

// ListNotes returns ownerID's notes in creation order. skip and limit must
// be non-negative; limit defaults to 10 and is capped at 100 to bound the
// response size.
func (u *NoteUsecase) ListNotes(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Note, error) {
	if skip < 0 || limit < 0 {
		return nil, domain.ErrInvalidPagination
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	notes, err := u.notes.ListByOwner(ctx, repository.ListNotesInput{
		OwnerID: ownerID,
		Offset:  skip,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}
