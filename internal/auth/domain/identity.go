package domain

// Identity is the per-request authentication state. A nil Principal means anonymous.
type Identity struct {
	Principal *Principal
}

// Anonymous returns an identity with no principal.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns an identity bound to a copy of the principal.
func Authenticated(principal Principal) Identity {
	principal.Authorities = append([]Authority(nil), principal.Authorities...)
	principal.CredentialHash = ""
	return Identity{Principal: &principal}
}

// IsAuthenticated reports whether the identity carries a principal.
func (i Identity) IsAuthenticated() bool {
	return i.Principal != nil
}

// Username returns the principal username or an empty string for anonymous identities.
func (i Identity) Username() string {
	if i.Principal == nil {
		return ""
	}
	return i.Principal.Username
}

// OwnedResource is a resource with a single owning principal.
type OwnedResource interface {
	OwnerUsername() string
}
