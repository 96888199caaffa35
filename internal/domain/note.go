package domain

import (
	"errors"
	"time"
)

var ErrInvalidPagination = errors.New("skip and limit must be non-negative")

// Note belongs to exactly one user; ownership never transfers.
type Note struct {
	ID        int64
	Title     string
	Content   string
	OwnerID   int64
	CreatedAt time.Time
}
