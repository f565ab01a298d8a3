package internal

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"user-account-api/config"
	"user-account-api/internal/application/services"
	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
	"user-account-api/internal/infrastructure/db/postgres/user"
	"user-account-api/internal/infrastructure/hasher"
	"user-account-api/internal/infrastructure/metrics"
	"user-account-api/internal/infrastructure/mq"
)

// BootstrapAdmin registers an ADMIN account directly against the store.
// Registration over HTTP needs an ADMIN token, so the first one comes from here.
func BootstrapAdmin(ctx context.Context, logger *zap.Logger, cfg config.Config, u domain.User, password string) (*domain.User, error) {
	dsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config error: %w", err)
	}
	pool, err := postgres.New(ctx, logger, dsn)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	u.Role = domain.RoleAdmin
	userService := services.NewUserService(
		user.NewRepository(pool),
		hasher.NewBcrypt(cfg.App.BcryptCost),
		mq.NopPublisher{},
		metrics.NewUnregisteredCounter(),
		logger,
	)

	return userService.Register(ctx, u, password)
}
