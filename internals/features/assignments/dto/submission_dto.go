package dto

import (
	"time"

	"skillup_backend/internals/features/assignments/model"
)

// ============================
// Submit Request DTO
// ============================

type SubmitAssignmentRequest struct {
	Email           string `json:"email" validate:"required,email"`
	ClassID         string `json:"classId" validate:"required"`
	AssignmentTitle string `json:"assignment_title"`
	Submission      string `json:"submission" validate:"required"`
}

func (r SubmitAssignmentRequest) ToModel() model.AssignmentSubmitModel {
	return model.AssignmentSubmitModel{
		Email:           r.Email,
		ClassID:         r.ClassID,
		AssignmentTitle: r.AssignmentTitle,
		Submission:      r.Submission,
		Date:            time.Now().UTC().Format(time.RFC3339),
	}
}
