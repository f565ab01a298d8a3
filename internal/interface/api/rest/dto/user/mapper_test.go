package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-account-api/internal/domain/user"
)

func TestToDomainUser(t *testing.T) {
	u, err := ToDomainUser(Request{
		Email:       "  Ivan@Example.COM ",
		Password:    "secret-password",
		Role:        "admin",
		Name:        "Jose\u0301",
		Surname:     " Petrov ",
		Patronymic:  "Sergeevich",
		DateOfBirth: "1990-05-17",
	})
	require.NoError(t, err)

	assert.Equal(t, "ivan@example.com", u.Email)
	assert.Equal(t, user.RoleAdmin, u.Role)
	assert.Equal(t, "Jos\u00e9", u.Name)
	assert.Equal(t, "Petrov", u.Surname)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), u.DateOfBirth)
	assert.Empty(t, u.PasswordHash)

	_, err = ToDomainUser(Request{DateOfBirth: "17.05.1990"})
	require.Error(t, err)
}

func TestToResponsePage(t *testing.T) {
	created := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	p := ToResponsePage(user.Page{
		Items: user.Users{{
			ID:           1,
			Email:        "a@b.c",
			PasswordHash: "hash",
			Role:         user.RoleUser,
			DateOfBirth:  time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC),
			Status:       user.StatusActive,
			CreatedAt:    created,
		}},
		TotalPages:  3,
		CurrentPage: 2,
	})

	require.Len(t, p.Items, 1)
	assert.Equal(t, "2000-01-02", p.Items[0].DateOfBirth)
	assert.Equal(t, "active", p.Items[0].Status)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.CurrentPage)
}
