package dto

import (
	"time"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/classes/model"
	"skillup_backend/internals/features/classes/repository"
)

// ============================
// Create Request DTO
// ============================

type CreateClassRequest struct {
	Title       string  `json:"classTitle" validate:"required,min=3"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"`
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Price       float64 `json:"price" validate:"gte=0"`
}

func (r CreateClassRequest) ToModel() model.ClassModel {
	return model.ClassModel{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Name:        r.Name,
		Email:       r.Email,
		Price:       r.Price,
		Enroll:      0,
		Status:      constants.StatusPending,
	}
}

// ============================
// Update Request DTOs
// ============================

// UpdateClassRequest: partial update dengan allow-list field.
type UpdateClassRequest struct {
	Title       *string  `json:"classTitle" validate:"omitempty,min=3"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

func (r UpdateClassRequest) ToUpdate() repository.ClassUpdate {
	return repository.ClassUpdate{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Price:       r.Price,
	}
}

type UpdateClassStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approve reject"`
}

// ============================
// Add Assignment DTO
// ============================

type AddAssignmentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

func (r AddAssignmentRequest) ToModel() model.AssignmentModel {
	return model.AssignmentModel{
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
		CreatedAt:   time.Now().UTC(),
	}
}
