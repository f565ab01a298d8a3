package ports

import (
	"context"

	"user-account-api/internal/domain/user"
)

type Auth interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, id user.ID) (int64, error)
	CheckSession(ctx context.Context, caller user.Identity) (string, error)
}

type TokenIssuer interface {
	Issue(id int64, email string, role user.Role) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
