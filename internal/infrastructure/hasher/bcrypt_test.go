package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"user-account-api/internal/domain/user"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	h1, err := b.Hash("correct_password")
	require.NoError(t, err)
	h2, err := b.Hash("correct_password")
	require.NoError(t, err)

	assert.NotEqual(t, "correct_password", h1)
	assert.NotEqual(t, h1, h2, "hashes must be salted")

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{"matching password", h1, "correct_password", nil},
		{"second salt matches too", h2, "correct_password", nil},
		{"wrong password", h1, "wrong_password", ErrMismatch},
		{"empty password", h1, "", ErrMismatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := b.Compare(tt.hash, tt.password)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBcrypt_CompareMalformedHash(t *testing.T) {
	err := NewBcrypt(bcrypt.MinCost).Compare("plain-text", "plain-text")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
}

func TestBcrypt_HashTooLong(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	_, err := b.Hash(strings.Repeat("пароль", 7)) // 84 bytes
	var vErr *user.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "password")

	h, err := b.Hash(strings.Repeat("пароль", 6)) // 72 bytes
	require.NoError(t, err)
	assert.ErrorIs(t, b.Compare(h, strings.Repeat("пароль", 7)), ErrMismatch)
}
