package usecase

import (
	authDomain "github.com/allisson/store/internal/auth/domain"
)

// ownershipAuthorizer implements OwnershipAuthorizer by comparing usernames.
type ownershipAuthorizer struct{}

// Authorize allows only the authenticated owner of the resource.
func (o *ownershipAuthorizer) Authorize(
	identity authDomain.Identity,
	resource authDomain.OwnedResource,
) error {
	if !identity.IsAuthenticated() {
		return authDomain.ErrForbidden
	}
	if identity.Username() != resource.OwnerUsername() {
		return authDomain.ErrForbidden
	}
	return nil
}

// NewOwnershipAuthorizer creates a new OwnershipAuthorizer.
func NewOwnershipAuthorizer() OwnershipAuthorizer {
	return &ownershipAuthorizer{}
}
