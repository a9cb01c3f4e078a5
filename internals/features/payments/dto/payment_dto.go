package dto

import (
	"time"

	"skillup_backend/internals/features/payments/model"
)

// ============================
// Payment intent
// ============================

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// ============================
// Booking completion (POST /payments/:id)
// ============================

type BookingStudent struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

type CompleteBookingRequest struct {
	Student       BookingStudent `json:"student" validate:"required"`
	Amount        float64        `json:"amount" validate:"gte=0"`
	TransactionID string         `json:"transactionId"`
}

func (r CompleteBookingRequest) ToModel(classID, classTitle string) model.PaymentModel {
	return model.PaymentModel{
		Student: model.PaymentStudent{
			Name:  r.Student.Name,
			Email: r.Student.Email,
		},
		Class: model.PaymentClass{
			ClassID: classID,
			Title:   classTitle,
		},
		Amount:        r.Amount,
		TransactionID: r.TransactionID,
		Date:          time.Now().UTC(),
	}
}
