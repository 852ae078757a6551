package repository

import (
	"context"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/user"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Add(ctx context.Context, u *user.User) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id int) error
	GetSingle(ctx context.Context, id int) (*user.User, error)
	GetMany(ctx context.Context) ([]*user.User, error)
}
