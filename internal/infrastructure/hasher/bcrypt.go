package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"user-account-api/internal/domain/user"
)

// ErrMismatch is returned by Compare when the password does not produce the hash.
var ErrMismatch = errors.New("password does not match")

const maxPasswordBytes = 72

type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", user.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(h), nil
}

func (b *Bcrypt) Compare(hash, password string) error {
	// bcrypt only reads the first 72 bytes; longer input was never hashed.
	if len(password) > maxPasswordBytes {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("bcrypt compare: %w", err)
}
