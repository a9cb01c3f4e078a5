package route

import (
	"github.com/gofiber/fiber/v2"

	userController "skillup_backend/internals/features/users/users/controller"
	"skillup_backend/internals/features/users/users/repository"
)

// UserRoutes: registrasi + lookup publik, listing/search + update khusus admin (guard).
func UserRoutes(app fiber.Router, store repository.UserStore, authGuard fiber.Handler) {
	ctrl := userController.NewUserController(store)

	app.Post("/users", ctrl.CreateUser)
	app.Get("/users/:email", ctrl.GetUserByEmail)

	app.Get("/users", authGuard, ctrl.ListUsers)
	app.Get("/profile", authGuard, ctrl.GetProfile)
	app.Put("/users/update/:email", authGuard, ctrl.UpdateUser)
}
