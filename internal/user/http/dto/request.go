// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/store/internal/user/usecase"
	appValidation "github.com/allisson/store/internal/validation"
)

// RegisterUserRequest represents the API request for user registration.
type RegisterUserRequest struct {
	Username  string `json:"username"`
	Pseudonym string `json:"pseudonym"`
	Password  string `json:"password"` //nolint:gosec // request payload, never logged
}

// Validate checks the request shape. Deeper rules live in the use case.
func (r *RegisterUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Pseudonym,
			validation.Required.Error("pseudonym is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request to the use case input.
func (r *RegisterUserRequest) ToInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Username:  r.Username,
		Pseudonym: r.Pseudonym,
		Password:  r.Password,
	}
}
