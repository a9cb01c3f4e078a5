package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStudent struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

type PaymentClass struct {
	ClassID string `json:"classId" bson:"classId"`
	Title   string `json:"title,omitempty" bson:"title,omitempty"`
}

// PaymentModel: record booking, hanya ditulis setelah increment enroll sukses.
type PaymentModel struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Student       PaymentStudent     `json:"student" bson:"student"`
	Class         PaymentClass       `json:"class" bson:"class"`
	Amount        float64            `json:"amount" bson:"amount"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Date          time.Time          `json:"date" bson:"date"`
}
