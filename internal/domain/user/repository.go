package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
