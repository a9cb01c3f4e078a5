// file: internals/features/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/teachers/dto"
	"skillup_backend/internals/features/teachers/repository"
	helper "skillup_backend/internals/helpers"
)

var validateTeacher = validator.New()

type TeacherController struct {
	Store repository.TeacherStore
}

func NewTeacherController(store repository.TeacherStore) *TeacherController {
	return &TeacherController{Store: store}
}

// =======================
// ➕ POST /teachers (pengajuan jadi teacher)
// =======================
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	teacher := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &teacher)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	teacher.ID = id

	return helper.JsonCreated(c, "Teacher request submitted", teacher)
}

// =======================
// 📄 GET /teachers?email=
// Tiga list terpisah per status (pending/approve/rejected)
// =======================
func (ctrl *TeacherController) GetTeacherStatusLists(c *fiber.Ctx) error {
	email := c.Query("email")
	ctx := c.UserContext()

	pending, err := ctrl.Store.FindByEmailAndStatus(ctx, email, constants.StatusPending)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	approved, err := ctrl.Store.FindByEmailAndStatus(ctx, email, constants.StatusApprove)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	rejected, err := ctrl.Store.FindByEmailAndStatus(ctx, email, constants.StatusReject)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "", dto.TeacherStatusListsDTO{
		Pending:  pending,
		Approve:  approved,
		Rejected: rejected,
	})
}

// =======================
// 📄 GET /teachers/requests (admin)
// =======================
func (ctrl *TeacherController) GetTeacherRequests(c *fiber.Ctx) error {
	teachers, err := ctrl.Store.FindAll(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", teachers)
}

// =======================
// ✏️ PATCH /teachers/update-status/:email
// Jalur re-apply: status balik ke pending
// =======================
func (ctrl *TeacherController) ResetStatus(c *fiber.Ctx) error {
	email := c.Params("email")

	modified, err := ctrl.Store.ResetStatusByEmail(c.UserContext(), email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonUpdated(c, "Status updated successfully", fiber.Map{"modifiedCount": modified})
}

// =======================
// ✏️ PUT /teachers/update-status/:id
// Review pengajuan: set status + cascade role user (satu transaksi)
// =======================
func (ctrl *TeacherController) ReviewTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var body dto.ReviewTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.Store.Review(c.UserContext(), id, body.Status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonUpdated(c, "Status updated successfully", nil)
}
