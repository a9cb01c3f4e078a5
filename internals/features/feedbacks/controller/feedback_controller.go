// file: internals/features/feedbacks/controller/feedback_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillup_backend/internals/features/feedbacks/dto"
	"skillup_backend/internals/features/feedbacks/repository"
	helper "skillup_backend/internals/helpers"
)

var validateFeedback = validator.New()

type FeedbackController struct {
	Store repository.FeedbackStore
}

func NewFeedbackController(store repository.FeedbackStore) *FeedbackController {
	return &FeedbackController{Store: store}
}

// =======================
// 📄 GET /feedbacks (publik)
// =======================
func (ctrl *FeedbackController) ListFeedbacks(c *fiber.Ctx) error {
	feedbacks, err := ctrl.Store.FindAll(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", feedbacks)
}

// =======================
// 📄 GET /feedbacks/:classId
// =======================
func (ctrl *FeedbackController) ListFeedbacksByClass(c *fiber.Ctx) error {
	feedbacks, err := ctrl.Store.FindByClassID(c.UserContext(), c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", feedbacks)
}

// =======================
// ➕ POST /feedbacks (alias lama: /submit-feedback)
// Flag success/failure eksplisit di body, terpisah dari status transport.
// =======================
func (ctrl *FeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	var body dto.SubmitFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFeedback.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	feedback := body.ToModel()
	if _, err := ctrl.Store.Create(c.UserContext(), &feedback); err != nil {
		log.Println("[ERROR] insert feedback:", err)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to submit feedback.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Feedback submitted successfully!",
	})
}
