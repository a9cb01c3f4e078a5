package dto

import "skillup_backend/internals/features/feedbacks/model"

type SubmitFeedbackRequest struct {
	ClassID     string  `json:"classId" validate:"required"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Description string  `json:"description" validate:"required,min=3"`
	Rating      float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

func (r SubmitFeedbackRequest) ToModel() model.FeedbackModel {
	return model.FeedbackModel{
		ClassID:     r.ClassID,
		Name:        r.Name,
		Image:       r.Image,
		Description: r.Description,
		Rating:      r.Rating,
	}
}
