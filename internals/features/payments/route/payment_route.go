package route

import (
	"github.com/gofiber/fiber/v2"

	classrepo "skillup_backend/internals/features/classes/repository"
	paymentController "skillup_backend/internals/features/payments/controller"
	"skillup_backend/internals/features/payments/repository"
)

// PaymentRoutes: semua rute pembayaran butuh auth; intent punya limiter sendiri.
func PaymentRoutes(app fiber.Router, store repository.PaymentStore, classes classrepo.ClassStore, authGuard fiber.Handler, paymentLimiter fiber.Handler) {
	ctrl := paymentController.NewPaymentController(store, classes)

	app.Post("/create-payment-intent", authGuard, paymentLimiter, ctrl.CreatePaymentIntent)
	app.Post("/payments/:id", authGuard, ctrl.CompleteBooking)
	app.Get("/enrolled-classes/:email", authGuard, ctrl.EnrolledClasses)
}
