package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type FeedbackModel struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ClassID     string             `json:"classId" bson:"classId"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Description string             `json:"description" bson:"description"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
}
