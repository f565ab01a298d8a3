package user

import (
	"context"
)

// Repository returns (nil, nil) from the Fetch* lookups when no row matches.
type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchUsersByRole(ctx context.Context, role Role, limit, offset int) (Users, error)
	CountUsersByRole(ctx context.Context, role Role) (int, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateStatus(ctx context.Context, id ID, status Status) (int64, error)
	Block(ctx context.Context, id ID) (int64, error)
}
