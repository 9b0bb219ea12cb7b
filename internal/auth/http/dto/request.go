// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/store/internal/auth/domain"
	customValidation "github.com/allisson/store/internal/validation"
)

// AuthenticateRequest contains the credentials exchanged for a token.
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` //nolint:gosec // request payload, never logged
}

// Validate checks that both credentials are present.
func (r *AuthenticateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
}

// ToInput maps the request to the use case input.
func (r *AuthenticateRequest) ToInput() *authDomain.AuthenticateInput {
	return &authDomain.AuthenticateInput{
		Username: r.Username,
		Password: r.Password,
	}
}
