package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanLogin(t *testing.T) {
	require.NoError(t, CanLogin(&User{}))
	assert.ErrorIs(t, CanLogin(&User{IsBlocked: true}), ErrBlocked)
}

func TestCanViewUser(t *testing.T) {
	tests := []struct {
		name   string
		caller Identity
		target ID
		want   error
	}{
		{"own record", Identity{ID: 5, Email: "a@b.c", Role: RoleUser}, 5, nil},
		{"foreign record as user", Identity{ID: 5, Email: "a@b.c", Role: RoleUser}, 6, ErrAccessDenied},
		{"foreign record as admin", Identity{ID: 1, Email: "root@b.c", Role: RoleAdmin}, 6, nil},
		{"anonymous caller", Identity{}, 0, ErrAccessDenied},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := CanViewUser(tt.caller, tt.target)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCanBlockAsAdmin(t *testing.T) {
	admin := &User{ID: 1, Email: "root@example.com", Role: RoleAdmin}
	plain := &User{ID: 2, Email: "joe@example.com", Role: RoleUser}

	tests := []struct {
		name    string
		caller  Identity
		auth    *User
		confirm string
		want    error
	}{
		{"admin confirms", admin.Identity(), admin, "ROOT@example.com ", nil},
		{"confirm email differs", admin.Identity(), admin, "other@example.com", ErrCredentialsMismatch},
		{"credentials of another account", admin.Identity(), plain, plain.Email, ErrCredentialsMismatch},
		{"non admin credentials", plain.Identity(), plain, plain.Email, ErrAccessDenied},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := CanBlockAsAdmin(tt.caller, tt.auth, tt.confirm)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCanBlockSelf(t *testing.T) {
	admin := &User{ID: 1, Email: "root@example.com", Role: RoleAdmin}
	plain := &User{ID: 2, Email: "joe@example.com", Role: RoleUser}

	tests := []struct {
		name    string
		caller  Identity
		auth    *User
		confirm string
		target  ID
		want    error
	}{
		{"user blocks itself", plain.Identity(), plain, plain.Email, plain.ID, nil},
		{"admin cannot block itself", admin.Identity(), admin, admin.Email, admin.ID, ErrAdminSelfBlock},
		{"user targets someone else", plain.Identity(), plain, plain.Email, 99, ErrAccessDenied},
		{"confirm email differs", plain.Identity(), plain, "x@example.com", plain.ID, ErrCredentialsMismatch},
		{"session belongs to another account", admin.Identity(), plain, plain.Email, plain.ID, ErrCredentialsMismatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := CanBlockSelf(tt.caller, tt.auth, tt.confirm, tt.target)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIdentity_HasRole(t *testing.T) {
	assert.True(t, Identity{ID: 1, Email: "a@b.c", Role: RoleAdmin}.HasRole(RoleAdmin))
	assert.False(t, Identity{ID: 1, Email: "a@b.c", Role: RoleUser}.HasRole(RoleAdmin))
	assert.False(t, Identity{Role: RoleAdmin}.HasRole(RoleAdmin))
}

func TestUser_CheckRequired(t *testing.T) {
	u := User{
		Email:       "joe@example.com",
		Name:        "Joe",
		Surname:     "Doe",
		Patronymic:  "Jr",
		DateOfBirth: time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, u.CheckRequired())

	u.DateOfBirth = time.Time{}
	u.Surname = ""
	err := u.CheckRequired()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, verr.Fields, "dateOfBirth")
	assert.Contains(t, verr.Fields, "surname")
	assert.Equal(t, "validation failed: dateOfBirth: dateOfBirth is required; surname: surname is required", err.Error())
}

func TestStatusAndRole_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusInactive.IsValid())
	assert.False(t, Status("deleted").IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("ROOT").IsValid())
}
