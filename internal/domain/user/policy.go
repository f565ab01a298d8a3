package user

import "strings"

func (r Role) IsAdmin() bool { return r == RoleAdmin }

func (i Identity) IsZero() bool { return i.ID == 0 || i.Email == "" }

func (i Identity) HasRole(role Role) bool { return !i.IsZero() && i.Role == role }

// CanLogin decides whether an account whose password already matched may get a session.
func CanLogin(u *User) error {
	if u.IsBlocked {
		return ErrBlocked
	}
	return nil
}

// CanViewUser allows an account to read itself; administrators read anyone.
func CanViewUser(caller Identity, targetID ID) error {
	if caller.IsZero() {
		return ErrAccessDenied
	}
	if caller.ID != targetID && !caller.Role.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}

// CanBlockAsAdmin checks the re-entered credentials of an administrator before
// a block: they must belong to the session caller and to the confirmed email.
func CanBlockAsAdmin(caller Identity, authenticated *User, confirmEmail string) error {
	if !sameEmail(authenticated.Email, confirmEmail) || authenticated.ID != caller.ID {
		return ErrCredentialsMismatch
	}
	if !authenticated.Role.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}

// CanBlockSelf checks the re-entered credentials of an account blocking itself.
func CanBlockSelf(caller Identity, authenticated *User, confirmEmail string, targetID ID) error {
	if !sameEmail(authenticated.Email, confirmEmail) || authenticated.ID != caller.ID {
		return ErrCredentialsMismatch
	}
	if authenticated.Role.IsAdmin() {
		return ErrAdminSelfBlock
	}
	if authenticated.ID != targetID {
		return ErrAccessDenied
	}
	return nil
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
