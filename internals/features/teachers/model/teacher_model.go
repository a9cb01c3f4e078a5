package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// TeacherModel = pengajuan role teacher (satu per email user).
// Status: pending / approve / reject — menggerakkan transisi role user.
type TeacherModel struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	Experience string             `json:"experience,omitempty" bson:"experience,omitempty"`
	Title      string             `json:"title,omitempty" bson:"title,omitempty"`
	Category   string             `json:"category,omitempty" bson:"category,omitempty"`
	Status     string             `json:"status" bson:"status"`
}
