package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"user-account-api/internal/interface/api/rest/dto/auth"
	"user-account-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen   = 8
	maxPasswordBytes = 72 // bcrypt input limit, in bytes

	// MaxLimit caps the page size of a listing.
	MaxLimit = 100

	DefaultPage  = 1
	DefaultLimit = 3
)

var (
	errHumanName = errors.New("allowed characters: letters, space, '-', '''")
	errRole      = errors.New("must be USER or ADMIN")
	errPassBytes = fmt.Errorf("must be at most %d bytes", maxPasswordBytes)
)

// ParsePagination coerces page and limit; anything that is not a positive
// integer falls back to the defaults. limit is capped at MaxLimit.
func ParsePagination(page, limit string) (int, int) {
	return positiveOr(page, DefaultPage), min(positiveOr(limit, DefaultLimit), MaxLimit)
}

func positiveOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return id, err == nil && id > 0
}

func ValidateRegistration(r user.Request) map[string]string {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.RuneLength(minPasswordLen, 0), validation.By(fitsBcrypt)),
		validation.Field(&r.Role, validation.By(isRole)),
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, 64), validation.By(isHumanName)),
		validation.Field(&r.Surname, validation.Required, validation.RuneLength(1, 64), validation.By(isHumanName)),
		validation.Field(&r.Patronymic, validation.Required, validation.RuneLength(1, 64), validation.By(isHumanName)),
		validation.Field(&r.DateOfBirth, validation.Required, validation.Date(user.DateLayout).Max(time.Now().UTC())),
	)

	return toMap(err)
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	r.Email = strings.TrimSpace(r.Email)
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		// password is not trimmed; a wrong one is for the hash comparison to decide
		validation.Field(&r.Password, validation.Required),
	)

	return toMap(err)
}

func ValidateLogout(r auth.LogoutRequest) map[string]string {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, validation.Min(int64(1))),
	)

	return toMap(err)
}

func ValidateAdminBlock(r user.AdminBlockRequest) map[string]string {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.AdminEmail, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.ID, validation.Required, validation.Min(int64(1))),
	)

	return toMap(err)
}

func ValidateSelfBlock(r user.SelfBlockRequest) map[string]string {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.UserEmail, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.ID, validation.Required, validation.Min(int64(1))),
	)

	return toMap(err)
}

func toMap(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}

	errs := make(map[string]string, len(verrs))
	for field, e := range verrs {
		errs[field] = e.Error()
	}

	return errs
}

func isHumanName(value interface{}) error {
	s, _ := value.(string)
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return errHumanName
	}
	return nil
}

func fitsBcrypt(value interface{}) error {
	s, _ := value.(string)
	if len(s) > maxPasswordBytes {
		return errPassBytes
	}
	return nil
}

// isRole accepts an empty role, which defaults to USER.
func isRole(value interface{}) error {
	s, _ := value.(string)
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "USER", "ADMIN":
		return nil
	default:
		return errRole
	}
}
