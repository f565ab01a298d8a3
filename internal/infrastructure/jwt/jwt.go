package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"user-account-api/internal/domain/user"
)

const DefaultTTL = 24 * time.Hour

type Service struct {
	jwtSecret string
	ttl       time.Duration
	now       func() time.Time
}

func New(jwtSecret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{jwtSecret: jwtSecret, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for issuing and validating.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() user.Identity {
	return user.Identity{ID: c.ID, Email: c.Email, Role: user.Role(c.Role)}
}

func (s *Service) Issue(id int64, email string, role user.Role) (string, error) {
	now := s.now()
	claims := Claims{
		ID:    id,
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.jwtSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
