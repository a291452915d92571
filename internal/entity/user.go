package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paperbase/paperbase/constants"
)

// User represents an account for data transfer between layers.
// The password hash never leaves the repository layer.
type User struct {
	ID          uuid.UUID             `json:"id"`
	Phone       string                `json:"phone"`
	Name        string                `json:"name"`
	Role        string                `json:"role"`
	Permissions constants.Permissions `json:"permissions"`
	Active      bool                  `json:"active"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}
