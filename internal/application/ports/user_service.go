package ports

import (
	"context"

	"user-account-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, u user.User, password string) (*user.User, error)
	ListUsers(ctx context.Context, page, limit int) (user.Page, error)
	GetUser(ctx context.Context, caller user.Identity, id user.ID) (*user.User, error)
	BlockByAdmin(ctx context.Context, caller user.Identity, targetID user.ID, adminEmail string, cred user.Credentials) error
	BlockSelf(ctx context.Context, caller user.Identity, targetID user.ID, userEmail string, cred user.Credentials) error
}
