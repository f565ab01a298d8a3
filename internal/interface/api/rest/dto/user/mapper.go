package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"user-account-api/internal/domain/user"
)

const DateLayout = "2006-01-02"

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:          uDomain.ID,
		Email:       uDomain.Email,
		Role:        string(uDomain.Role),
		Name:        uDomain.Name,
		Surname:     uDomain.Surname,
		Patronymic:  uDomain.Patronymic,
		DateOfBirth: uDomain.DateOfBirth.Format(DateLayout),
		Status:      string(uDomain.Status),
		IsBlocked:   uDomain.IsBlocked,
		CreatedAt:   uDomain.CreatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToResponsePage(p user.Page) Page {
	return Page{
		Items:       ToResponseUsers(p.Items),
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	}
}

// ToDomainUser maps a registration request; the password is not copied.
func ToDomainUser(uRequest Request) (user.User, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(uRequest.DateOfBirth))
	if err != nil {
		return user.User{}, errors.New("invalid dateOfBirth format, want YYYY-MM-DD")
	}

	var u = user.User{
		Email:       NormalizeEmail(uRequest.Email),
		Role:        user.Role(strings.ToUpper(strings.TrimSpace(uRequest.Role))),
		Name:        normalizeName(uRequest.Name),
		Surname:     normalizeName(uRequest.Surname),
		Patronymic:  normalizeName(uRequest.Patronymic),
		DateOfBirth: d,
	}

	return u, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeName folds decomposed accents so equal names compare equal.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
