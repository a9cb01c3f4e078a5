// file: internals/features/classes/controller/class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/features/classes/dto"
	"skillup_backend/internals/features/classes/repository"
	helper "skillup_backend/internals/helpers"
)

var validateClass = validator.New()

type ClassController struct {
	Store repository.ClassStore
}

func NewClassController(store repository.ClassStore) *ClassController {
	return &ClassController{Store: store}
}

// =======================
// 📄 GET /classes?search=
// =======================
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	classes, err := ctrl.Store.FindAll(c.UserContext(), c.Query("search"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", classes)
}

// =======================
// 📄 GET /classes/:email (class milik satu teacher)
// =======================
func (ctrl *ClassController) ListClassesByOwner(c *fiber.Ctx) error {
	classes, err := ctrl.Store.FindByOwner(c.UserContext(), c.Params("email"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", classes)
}

// =======================
// 🔎 GET /classes/single/:id
// =======================
func (ctrl *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	class, err := ctrl.Store.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", class)
}

// =======================
// ➕ POST /classes
// =======================
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClass.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &class)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	class.ID = id

	return helper.JsonCreated(c, "Class created", class)
}

// =======================
// 🗑 DELETE /classes/:id
// =======================
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	deleted, err := ctrl.Store.Delete(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if deleted != 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonDeleted(c, "Class deleted successfully", nil)
}

// =======================
// ✏️ PATCH /classes/update-status/:id
// =======================
func (ctrl *ClassController) UpdateClassStatus(c *fiber.Ctx) error {
	id, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var body dto.UpdateClassStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClass.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	modified, err := ctrl.Store.UpdateStatus(c.UserContext(), id, body.Status)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonUpdated(c, "Status updated", fiber.Map{"modifiedCount": modified})
}

// =======================
// ✏️ PATCH /classes/update/:id (partial, allow-list)
// =======================
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClass.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	modified, err := ctrl.Store.UpdateFields(c.UserContext(), id, body.ToUpdate())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if modified != 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonUpdated(c, "Class updated successfully", nil)
}

// =======================
// ➕ POST /classes/add-assignment/:id
// =======================
func (ctrl *ClassController) AddAssignment(c *fiber.Ctx) error {
	id, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var body dto.AddAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClass.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	modified, err := ctrl.Store.AddAssignment(c.UserContext(), id, body.ToModel())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if modified != 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonOK(c, "Assignment added successfully", nil)
}
