package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

// maxPrealloc bounds the slice capacity reserved up front for a page.
const maxPrealloc = 100

func (r *Repository) FetchUsersByRole(ctx context.Context, role user.Role, limit, offset int) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsersByRole, string(role), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	us := make(Users, 0, min(limit, maxPrealloc))
	for rows.Next() {
		u := new(User)
		if err = rows.Scan(u.scanTargets()...); err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) CountUsersByRole(ctx context.Context, role user.Role) (int, error) {
	var n int64
	if err := r.db.QueryRow(ctx, CountUsersByRole, string(role)).Scan(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, id)
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u := new(User)
	if err := r.db.QueryRow(ctx, query, arg).Scan(u.scanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email,
		req.PasswordHash,
		string(req.Role),
		req.Name,
		req.Surname,
		req.Patronymic,
		req.DateOfBirth,
		string(req.Status),
	).Scan(u.scanTargets()...)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailTaken
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id user.ID, status user.Status) (int64, error) {
	if !status.IsValid() {
		return 0, fmt.Errorf("unknown status %q", status)
	}

	tag, err := r.db.Exec(ctx, UpdateStatusByID, string(status), id)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) Block(ctx context.Context, id user.ID) (int64, error) {
	tag, err := r.db.Exec(ctx, BlockUserByID, id)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
