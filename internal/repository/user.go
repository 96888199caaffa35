package repository

import (
	"context"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
)

// Usecases depend on interfaces, not concrete implementations, so the DB can
// be swapped and tests can inject fakes.
type UserRepository interface {
	// Create inserts a new user. Uniqueness of the username is enforced by
	// the store itself, so concurrent registrations of the same name yield
	// exactly one success and one domain.ErrDuplicateUsername.
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
