package route

import (
	"github.com/gofiber/fiber/v2"

	classController "skillup_backend/internals/features/classes/controller"
	"skillup_backend/internals/features/classes/repository"
)

// ClassRoutes: listing publik; mutasi di belakang guard.
// Catatan: /classes/single/:id harus terdaftar sebelum /classes/:email.
func ClassRoutes(app fiber.Router, store repository.ClassStore, authGuard fiber.Handler) {
	ctrl := classController.NewClassController(store)

	app.Get("/classes", ctrl.ListClasses)
	app.Get("/classes/single/:id", ctrl.GetClass)
	app.Get("/classes/:email", ctrl.ListClassesByOwner)

	app.Post("/classes", authGuard, ctrl.CreateClass)
	app.Delete("/classes/:id", authGuard, ctrl.DeleteClass)
	app.Patch("/classes/update-status/:id", authGuard, ctrl.UpdateClassStatus)
	app.Patch("/classes/update/:id", authGuard, ctrl.UpdateClass)
	app.Post("/classes/add-assignment/:id", authGuard, ctrl.AddAssignment)
}
