package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/metrics"
	"user-account-api/internal/infrastructure/mq"
	"user-account-api/internal/interface/api/rest/dto/user"
)

const (
	defaultPage  = 1
	defaultLimit = 3
	maxLimit     = 100
)

type UserService struct {
	userRepository domain.Repository
	hasher         ports.PasswordHasher
	events         ports.EventPublisher
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
}

func NewUserService(
	userRepository domain.Repository,
	hasher ports.PasswordHasher,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		events:         events,
		mCounter:       mCounter,
		logger:         logger,
	}
}

func (us *UserService) Register(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if err := u.CheckRequired(); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if !u.Role.IsValid() {
		return nil, domain.NewValidationError("role", "must be USER or ADMIN")
	}

	existing, err := us.userRepository.FetchUserByEmail(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("fetch user by email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := us.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u.ID = 0
	u.PasswordHash = hash
	u.Status = domain.StatusPending
	u.IsBlocked = false

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.mCounter.WithLabelValues(metrics.UserRegistered).Inc()
	payload := user.ToResponseUser(*uRet)
	publish(ctx, us.events, us.logger, mq.NewEvent(mq.ActionRegistered, uRet.ID, &payload))

	return uRet, nil
}

func (us *UserService) ListUsers(ctx context.Context, page, limit int) (domain.Page, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	total, err := us.userRepository.CountUsersByRole(ctx, domain.RoleUser)
	if err != nil {
		return domain.Page{}, fmt.Errorf("count users: %w", err)
	}

	p := domain.Page{
		Items:       domain.Users{},
		TotalPages:  total / limit,
		CurrentPage: page,
	}
	if total%limit != 0 {
		p.TotalPages++
	}
	// past the last page there is nothing to fetch, and the offset could overflow
	if page > p.TotalPages {
		return p, nil
	}

	p.Items, err = us.userRepository.FetchUsersByRole(ctx, domain.RoleUser, limit, (page-1)*limit)
	if err != nil {
		return domain.Page{}, fmt.Errorf("fetch users: %w", err)
	}

	return p, nil
}

func (us *UserService) GetUser(ctx context.Context, caller domain.Identity, id domain.ID) (*domain.User, error) {
	if err := domain.CanViewUser(caller, id); err != nil {
		return nil, err
	}

	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch user %d: %w", id, err)
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	return u, nil
}

func (us *UserService) BlockByAdmin(
	ctx context.Context,
	caller domain.Identity,
	targetID domain.ID,
	adminEmail string,
	cred domain.Credentials,
) error {
	authed, err := us.reauthenticate(ctx, cred)
	if err != nil {
		return err
	}
	if err = domain.CanBlockAsAdmin(caller, authed, adminEmail); err != nil {
		return err
	}

	return us.block(ctx, targetID)
}

func (us *UserService) BlockSelf(
	ctx context.Context,
	caller domain.Identity,
	targetID domain.ID,
	userEmail string,
	cred domain.Credentials,
) error {
	authed, err := us.reauthenticate(ctx, cred)
	if err != nil {
		return err
	}
	if err = domain.CanBlockSelf(caller, authed, userEmail, targetID); err != nil {
		return err
	}

	return us.block(ctx, targetID)
}

func (us *UserService) reauthenticate(ctx context.Context, cred domain.Credentials) (*domain.User, error) {
	u, err := authenticate(ctx, us.userRepository, us.hasher, cred)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, fmt.Errorf("%w: %w", domain.ErrReauthFailed, err)
		}
		return nil, err
	}

	return u, nil
}

func (us *UserService) block(ctx context.Context, id domain.ID) error {
	n, err := us.userRepository.Block(ctx, id)
	if err != nil {
		return fmt.Errorf("block user %d: %w", id, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	us.mCounter.WithLabelValues(metrics.UserBlocked).Inc()
	publish(ctx, us.events, us.logger, mq.NewEvent(mq.ActionBlocked, id, nil))

	return nil
}
