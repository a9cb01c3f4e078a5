package route

import (
	"github.com/gofiber/fiber/v2"

	submissionController "skillup_backend/internals/features/assignments/controller"
	"skillup_backend/internals/features/assignments/repository"
)

// SubmissionRoutes: semua di belakang guard (student submit/check, teacher count).
func SubmissionRoutes(app fiber.Router, store repository.SubmissionStore, authGuard fiber.Handler) {
	ctrl := submissionController.NewSubmissionController(store)

	app.Post("/submit-assignment", authGuard, ctrl.SubmitAssignment)
	app.Get("/check-assignment", authGuard, ctrl.CheckAssignment)
	app.Get("/submitted-assignments/:classId", authGuard, ctrl.CountTodaySubmissions)
}
