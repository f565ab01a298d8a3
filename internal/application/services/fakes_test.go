package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/hasher"
	"user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/infrastructure/metrics"
	"user-account-api/internal/infrastructure/mq"
)

type fakeRepo struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
	clock  time.Time

	createErr error
	fetchErr  error
	updateErr error

	pageFetches int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users: make(map[int64]*domain.User),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRepo) FetchUserByID(_ context.Context, id domain.ID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) FetchUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) sortedByRole(role domain.Role) domain.Users {
	var us domain.Users
	for _, u := range r.users {
		if u.Role == role {
			cp := *u
			us = append(us, &cp)
		}
	}
	sort.Slice(us, func(i, j int) bool {
		if us[i].CreatedAt.Equal(us[j].CreatedAt) {
			return us[i].ID < us[j].ID
		}
		return us[i].CreatedAt.Before(us[j].CreatedAt)
	})
	return us
}

func (r *fakeRepo) FetchUsersByRole(_ context.Context, role domain.Role, limit, offset int) (domain.Users, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pageFetches++
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf("bad window limit=%d offset=%d", limit, offset)
	}
	us := r.sortedByRole(role)
	if offset >= len(us) {
		return domain.Users{}, nil
	}
	end := offset + limit
	if end > len(us) {
		end = len(us)
	}
	return us[offset:end], nil
}

func (r *fakeRepo) CountUsersByRole(_ context.Context, role domain.Role) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sortedByRole(role)), nil
}

func (r *fakeRepo) CreateUser(_ context.Context, req domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == req.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	req.ID = r.nextID
	req.CreatedAt = r.clock
	req.UpdatedAt = r.clock
	r.users[req.ID] = &req
	cp := req
	return &cp, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id domain.ID, status domain.Status) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.Status = status
	return 1, nil
}

func (r *fakeRepo) Block(_ context.Context, id domain.ID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.IsBlocked = true
	return 1, nil
}

func (r *fakeRepo) get(id int64) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.users[id]
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []mq.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, e mq.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Action)
	}
	return out
}

type fixture struct {
	repo   *fakeRepo
	events *fakePublisher
	tokens *jwt.Service
	hasher *hasher.Bcrypt
	users  *UserService
	auth   *AuthService
}

func newFixture() *fixture {
	f := &fixture{
		repo:   newFakeRepo(),
		events: &fakePublisher{},
		tokens: jwt.New("test-secret", 24*time.Hour),
		hasher: hasher.NewBcrypt(bcrypt.MinCost),
	}
	counter := metrics.NewUnregisteredCounter()
	logger := zap.NewNop()

	f.users = NewUserService(f.repo, f.hasher, f.events, counter, logger).(*UserService)
	f.auth = NewAuthService(f.repo, f.hasher, f.tokens, f.events, counter, logger).(*AuthService)

	return f
}

func newDomainUser(email string, role domain.Role) domain.User {
	return domain.User{
		Email:       email,
		Role:        role,
		Name:        "Ivan",
		Surname:     "Petrov",
		Patronymic:  "Sergeevich",
		DateOfBirth: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
	}
}

const testPassword = "VeryStrongPassw0rd!"

func (f *fixture) mustRegister(email string, role domain.Role) *domain.User {
	u, err := f.users.Register(context.Background(), newDomainUser(email, role), testPassword)
	if err != nil {
		panic(err)
	}
	return u
}
