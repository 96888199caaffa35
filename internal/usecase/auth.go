package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
	"github.com/AlexHopeIT/notes-servise-test/internal/password"
	"github.com/AlexHopeIT/notes-servise-test/internal/repository"
	"github.com/AlexHopeIT/notes-servise-test/internal/token"
)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *token.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens *token.Service) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Register hashes the password and creates the user. The plaintext never
// reaches the store or the logs.
func (u *AuthUsecase) Register(ctx context.Context, username, plaintext string) (*domain.User, error) {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// username and wrong password produce the same ErrInvalidCredentials, so the
// response does not reveal which part was wrong.
func (u *AuthUsecase) Login(ctx context.Context, username, plaintext string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	ok, err := password.Verify(plaintext, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}
