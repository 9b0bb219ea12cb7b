package service

import (
	authDomain "github.com/allisson/store/internal/auth/domain"
)

// denyListValidator implements CredentialValidator with an exact-match username deny-list.
type denyListValidator struct {
	banned map[string]struct{}
}

// Validate returns ErrBanned if the username is on the deny-list.
func (d *denyListValidator) Validate(username string) error {
	if _, ok := d.banned[username]; ok {
		return authDomain.ErrBanned
	}
	return nil
}

// NewCredentialValidator creates a CredentialValidator denying the given usernames.
// Matching is exact and case-sensitive.
func NewCredentialValidator(bannedUsernames []string) CredentialValidator {
	banned := make(map[string]struct{}, len(bannedUsernames))
	for _, username := range bannedUsernames {
		banned[username] = struct{}{}
	}
	return &denyListValidator{banned: banned}
}
