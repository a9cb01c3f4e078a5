package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentModel: tugas yang menempel (embedded) di dokumen class.
type AssignmentModel struct {
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Deadline    string    `json:"deadline,omitempty" bson:"deadline,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// ClassModel: course milik teacher (by email), counter enroll hanya naik
// lewat booking yang sukses.
type ClassModel struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"classTitle" bson:"classTitle"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Name        string             `json:"name" bson:"name"`   // nama teacher (denormalized)
	Email       string             `json:"email" bson:"email"` // email teacher pemilik
	Price       float64            `json:"price" bson:"price"`
	Enroll      int64              `json:"enroll" bson:"enroll"`
	Status      string             `json:"status" bson:"status"`
	Assignments []AssignmentModel  `json:"assignments,omitempty" bson:"assignments,omitempty"`
}
