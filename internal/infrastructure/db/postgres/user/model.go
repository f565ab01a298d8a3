package user

import (
	"time"
)

type (
	User struct {
		ID           int64
		Email        string
		PasswordHash string
		Role         string
		Name         string
		Surname      string
		Patronymic   string
		DateOfBirth  time.Time
		Status       string
		IsBlocked    bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

func (u *User) scanTargets() []any {
	return []any{
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,
		&u.Surname,
		&u.Patronymic,
		&u.DateOfBirth,
		&u.Status,
		&u.IsBlocked,

		&u.CreatedAt,
		&u.UpdatedAt,
	}
}
