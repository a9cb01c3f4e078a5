package route

import (
	"github.com/gofiber/fiber/v2"

	authController "skillup_backend/internals/features/users/auth/controller"
)

func AuthRoutes(app fiber.Router) {
	ctrl := authController.NewAuthController()

	app.Post("/jwt", ctrl.IssueToken)
	app.Get("/logout", ctrl.Logout)
}
