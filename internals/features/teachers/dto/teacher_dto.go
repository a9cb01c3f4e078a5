package dto

import (
	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/teachers/model"
)

// ============================
// Create Request DTO
// ============================

type CreateTeacherRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Image      string `json:"image"`
	Experience string `json:"experience"`
	Title      string `json:"title"`
	Category   string `json:"category"`
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		Name:       r.Name,
		Email:      r.Email,
		Image:      r.Image,
		Experience: r.Experience,
		Title:      r.Title,
		Category:   r.Category,
		Status:     constants.StatusPending,
	}
}

// ============================
// Review Request DTO
// ============================

type ReviewTeacherRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approve reject"`
}

// ============================
// Partitioned listing response
// (tiga list terpisah biar client tidak perlu filter sendiri)
// ============================

type TeacherStatusListsDTO struct {
	Pending  []model.TeacherModel `json:"pending"`
	Approve  []model.TeacherModel `json:"approve"`
	Rejected []model.TeacherModel `json:"rejected"`
}
