package user

import (
	"time"
)

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"

	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type (
	ID     = int64
	Role   string
	Status string

	User struct {
		ID           ID
		Email        string
		PasswordHash string
		Role         Role
		Name         string
		Surname      string
		Patronymic   string
		DateOfBirth  time.Time
		Status       Status
		IsBlocked    bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	// Identity is the caller resolved from a verified session token.
	Identity struct {
		ID    ID
		Email string
		Role  Role
	}

	Page struct {
		Items       Users
		TotalPages  int
		CurrentPage int
	}
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Role: u.Role}
}

// CheckRequired reports every required attribute that is empty.
func (u *User) CheckRequired() error {
	fields := make(map[string]string)
	if u.Email == "" {
		fields["email"] = "email is required"
	}
	if u.Name == "" {
		fields["name"] = "name is required"
	}
	if u.Surname == "" {
		fields["surname"] = "surname is required"
	}
	if u.Patronymic == "" {
		fields["patronymic"] = "patronymic is required"
	}
	if u.DateOfBirth.IsZero() {
		fields["dateOfBirth"] = "dateOfBirth is required"
	}
	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{Fields: fields}
}

// Credentials are an email and plaintext password re-entered by a caller.
type Credentials struct {
	Email    string
	Password string
}
