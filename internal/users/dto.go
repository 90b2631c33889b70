package users

import (
	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
)

// UserDTO is the account payload returned to clients. It never carries the
// password hash.
type UserDTO struct {
	ID       int64      `json:"id"`
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	Username *string    `json:"username"`
	Bio      *string    `json:"bio"`
	Role     enums.Role `json:"role"`
}

// NewUserDTO maps the persisted row to its client shape.
func NewUserDTO(account *models.User) *UserDTO {
	return &UserDTO{
		ID:       account.ID,
		Email:    account.Email,
		Name:     account.Name,
		Username: account.Username,
		Bio:      account.Bio,
		Role:     account.Role,
	}
}
