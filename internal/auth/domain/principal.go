package domain

import "slices"

// Principal is an authenticatable user as seen by the auth subsystem.
type Principal struct {
	Username       string      // Unique principal name, used as token subject
	Authorities    []Authority // Granted authorities
	CredentialHash string      //nolint:gosec // hashed password (not plaintext)
}

// HasAuthority reports whether the principal was granted the authority.
func (p *Principal) HasAuthority(authority Authority) bool {
	return slices.Contains(p.Authorities, authority)
}
