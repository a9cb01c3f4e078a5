package route

import (
	"github.com/gofiber/fiber/v2"

	feedbackController "skillup_backend/internals/features/feedbacks/controller"
	"skillup_backend/internals/features/feedbacks/repository"
)

func FeedbackRoutes(app fiber.Router, store repository.FeedbackStore, authGuard fiber.Handler) {
	ctrl := feedbackController.NewFeedbackController(store)

	app.Get("/feedbacks", ctrl.ListFeedbacks)

	app.Get("/feedbacks/:classId", authGuard, ctrl.ListFeedbacksByClass)
	app.Post("/feedbacks", authGuard, ctrl.SubmitFeedback)
	// alias lama dari client pertama
	app.Post("/submit-feedback", authGuard, ctrl.SubmitFeedback)
}
