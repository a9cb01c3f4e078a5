package helper

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID memvalidasi path/query param sebagai ObjectID.
// Balikin fiber error 400 kalau formatnya salah.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}
	return oid, nil
}
