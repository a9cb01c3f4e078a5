// file: internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	classrepo "skillup_backend/internals/features/classes/repository"
	"skillup_backend/internals/features/payments/dto"
	"skillup_backend/internals/features/payments/repository"
	"skillup_backend/internals/features/payments/service"
	helper "skillup_backend/internals/helpers"
)

var validatePayment = validator.New()

type PaymentController struct {
	Store   repository.PaymentStore
	Classes classrepo.ClassStore

	// CreateIntent bisa diganti di test; default bridge Stripe.
	CreateIntent func(amount int64) (string, error)
}

func NewPaymentController(store repository.PaymentStore, classes classrepo.ClassStore) *PaymentController {
	return &PaymentController{
		Store:        store,
		Classes:      classes,
		CreateIntent: service.CreatePaymentIntent,
	}
}

// =======================
// 💳 POST /create-payment-intent
// price → cent (ceil ×100) → client secret dari Stripe
// =======================
func (ctrl *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var body dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	amount := int64(math.Ceil(body.Price * 100))
	if amount < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid price")
	}

	clientSecret, err := ctrl.CreateIntent(amount)
	if err != nil {
		log.Println("[ERROR] stripe payment intent:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment provider error")
	}

	return c.JSON(dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

// =======================
// 💾 POST /payments/:id
// Booking: increment enroll + insert payment record (satu transaksi).
// Enroll tidak ter-update tepat satu → tidak ada payment record.
// =======================
func (ctrl *PaymentController) CompleteBooking(c *fiber.Ctx) error {
	classID, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var body dto.CompleteBookingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class, err := ctrl.Classes.FindByID(c.UserContext(), classID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	payment := body.ToModel(classID.Hex(), class.Title)
	paymentID, err := ctrl.Store.CompleteBooking(c.UserContext(), classID, &payment)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollNotUpdated) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	payment.ID = paymentID

	return helper.JsonCreated(c, "Payment recorded", payment)
}

// =======================
// 📄 GET /enrolled-classes/:email
// Payment record siswa → dedup classId → dokumen class.
// =======================
func (ctrl *PaymentController) EnrolledClasses(c *fiber.Ctx) error {
	email := c.Params("email")

	payments, err := ctrl.Store.FindByStudentEmail(c.UserContext(), email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if len(payments) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found in payment records")
	}

	seen := map[string]struct{}{}
	ids := []primitive.ObjectID{}
	for _, p := range payments {
		if _, ok := seen[p.Class.ClassID]; ok {
			continue
		}
		seen[p.Class.ClassID] = struct{}{}

		oid, err := primitive.ObjectIDFromHex(p.Class.ClassID)
		if err != nil {
			continue // record lama dengan id rusak, skip
		}
		ids = append(ids, oid)
	}

	classes, err := ctrl.Classes.FindByIDs(c.UserContext(), ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", classes)
}
