package dto

import (
	"time"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/users/users/model"
	"skillup_backend/internals/features/users/users/repository"
)

// ============================
// Create Request DTO
// ============================

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Username string `json:"username" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Image    string `json:"image"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

func (r CreateUserRequest) ToModel() model.UserModel {
	role := r.Role
	if role == "" {
		role = constants.RoleStudent
	}
	return model.UserModel{
		Name:      r.Name,
		Username:  r.Username,
		Email:     r.Email,
		Image:     r.Image,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// ============================
// Update Request DTO
// ============================

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Username *string `json:"username" validate:"omitempty,min=2"`
	Image    *string `json:"image"`
	Role     *string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

func (r UpdateUserRequest) ToUpdate() repository.UserUpdate {
	return repository.UserUpdate{
		Name:     r.Name,
		Username: r.Username,
		Image:    r.Image,
		Role:     r.Role,
	}
}
