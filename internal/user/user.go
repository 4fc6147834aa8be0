package user

import (
	"time"

	userDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/user"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromDataModelSlice(users []*userDatamodel.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromDataModel(u)
	}
	return result
}
