// Package domain defines authentication and authorization domain models.
// Implements stateless bearer-token authentication with principals, request identities
// and resource ownership checks.
package domain

// Authority names a coarse permission granted to a principal.
type Authority string

const (
	// UserAuthority is granted to every registered user.
	UserAuthority Authority = "user"
)

// BearerPrefix is the scheme prefix expected in the Authorization header.
const BearerPrefix = "Bearer "
