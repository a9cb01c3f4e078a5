package route

import (
	"github.com/gofiber/fiber/v2"

	teacherController "skillup_backend/internals/features/teachers/controller"
	"skillup_backend/internals/features/teachers/repository"
)

// TeacherRoutes: pengajuan publik, sisanya di belakang guard.
func TeacherRoutes(app fiber.Router, store repository.TeacherStore, authGuard fiber.Handler) {
	ctrl := teacherController.NewTeacherController(store)

	app.Post("/teachers", ctrl.CreateTeacher)

	app.Get("/teachers/requests", authGuard, ctrl.GetTeacherRequests)
	app.Get("/teachers", authGuard, ctrl.GetTeacherStatusLists)
	app.Patch("/teachers/update-status/:email", authGuard, ctrl.ResetStatus)
	app.Put("/teachers/update-status/:id", authGuard, ctrl.ReviewTeacher)
}
