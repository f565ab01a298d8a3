package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/hasher"
	"user-account-api/internal/infrastructure/metrics"
	"user-account-api/internal/infrastructure/mq"
)

var (
	ErrFailedToGenerateToken = errors.New("failed to generate token")
	ErrIdentityMissing       = errors.New("caller identity is missing")
)

type AuthService struct {
	userRepository user.Repository
	hasher         ports.PasswordHasher
	tokens         ports.TokenIssuer
	events         ports.EventPublisher
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
}

func NewAuthService(
	userRepository user.Repository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		events:         events,
		mCounter:       mCounter,
		logger:         logger,
	}
}

func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := authenticate(ctx, as.userRepository, as.hasher, user.Credentials{Email: email, Password: password})
	if err != nil {
		as.mCounter.WithLabelValues(metrics.LoginFailed).Inc()
		return "", err
	}
	if err = user.CanLogin(u); err != nil {
		as.mCounter.WithLabelValues(metrics.LoginFailed).Inc()
		return "", err
	}

	if _, err = as.userRepository.UpdateStatus(ctx, u.ID, user.StatusActive); err != nil {
		return "", fmt.Errorf("activate user %d: %w", u.ID, err)
	}

	token, err := as.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToGenerateToken, err)
	}

	as.mCounter.WithLabelValues(metrics.LoginSucceeded).Inc()
	publish(ctx, as.events, as.logger, mq.NewEvent(mq.ActionLoggedIn, u.ID, nil))

	return token, nil
}

func (as *AuthService) Logout(ctx context.Context, id user.ID) (int64, error) {
	n, err := as.userRepository.UpdateStatus(ctx, id, user.StatusInactive)
	if err != nil {
		return 0, fmt.Errorf("deactivate user %d: %w", id, err)
	}

	if n > 0 {
		as.mCounter.WithLabelValues(metrics.LoggedOut).Inc()
		publish(ctx, as.events, as.logger, mq.NewEvent(mq.ActionLoggedOut, id, nil))
	}

	return n, nil
}

func (as *AuthService) CheckSession(_ context.Context, caller user.Identity) (string, error) {
	if caller.IsZero() {
		return "", ErrIdentityMissing
	}

	token, err := as.tokens.Issue(caller.ID, caller.Email, caller.Role)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToGenerateToken, err)
	}

	as.mCounter.WithLabelValues(metrics.SessionChecked).Inc()

	return token, nil
}

// authenticate resolves the account owning cred, returning user.ErrNotFound
// or user.ErrInvalidCredentials when it cannot.
func authenticate(
	ctx context.Context,
	repo user.Repository,
	h ports.PasswordHasher,
	cred user.Credentials,
) (*user.User, error) {
	u, err := repo.FetchUserByEmail(ctx, cred.Email)
	if err != nil {
		return nil, fmt.Errorf("fetch user by email: %w", err)
	}
	if u == nil {
		return nil, user.ErrNotFound
	}

	if err = h.Compare(u.PasswordHash, cred.Password); err != nil {
		if errors.Is(err, hasher.ErrMismatch) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return u, nil
}

func publish(ctx context.Context, p ports.EventPublisher, logger *zap.Logger, e mq.Event) {
	if err := p.Publish(ctx, e); err != nil {
		logger.Warn("account event dropped",
			zap.Error(err),
			zap.String("action", e.Action),
			zap.Int64("user_id", e.UserID),
		)
	}
}
