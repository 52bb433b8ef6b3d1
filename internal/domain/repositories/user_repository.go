package repositories

import (
	"context"
	"errors"

	"auth-service/internal/domain/entities"
)

// ErrDuplicateEmail is returned by Create when the store's unique index on
// email rejects the row. Its text is the message shown to clients.
var ErrDuplicateEmail = errors.New("Email already exists")

// UserRepository is the durable store of user rows.
//
// Find methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
}
