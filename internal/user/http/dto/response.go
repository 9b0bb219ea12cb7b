package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/store/internal/user/domain"
)

// UserResponse represents the API response for a user.
// The password hash is never exposed.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Pseudonym string    `json:"pseudonym"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapUserToResponse converts a domain user to its API representation.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Pseudonym: user.Pseudonym,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
