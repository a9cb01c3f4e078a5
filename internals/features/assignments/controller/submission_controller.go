// file: internals/features/assignments/controller/submission_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillup_backend/internals/features/assignments/dto"
	"skillup_backend/internals/features/assignments/repository"
	helper "skillup_backend/internals/helpers"
)

var validateSubmission = validator.New()

type SubmissionController struct {
	Store repository.SubmissionStore
}

func NewSubmissionController(store repository.SubmissionStore) *SubmissionController {
	return &SubmissionController{Store: store}
}

// =======================
// ➕ POST /submit-assignment
// Tanpa dedup: submit dua kali = dua dokumen.
// =======================
func (ctrl *SubmissionController) SubmitAssignment(c *fiber.Ctx) error {
	var body dto.SubmitAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubmission.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	submission := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &submission)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	submission.ID = id

	return helper.JsonCreated(c, "Assignment submitted", submission)
}

// =======================
// 🔎 GET /check-assignment?email=&classId=
// =======================
func (ctrl *SubmissionController) CheckAssignment(c *fiber.Ctx) error {
	email := c.Query("email")
	classID := c.Query("classId")

	submissions, err := ctrl.Store.FindByEmailAndClass(c.UserContext(), email, classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", submissions)
}

// =======================
// 🔢 GET /submitted-assignments/:classId
// Jumlah submission hari ini (prefix match YYYY-MM-DD di kolom date).
// =======================
func (ctrl *SubmissionController) CountTodaySubmissions(c *fiber.Ctx) error {
	classID := c.Params("classId")
	today := time.Now().UTC().Format("2006-01-02")

	total, err := ctrl.Store.CountByClassAndDay(c.UserContext(), classID, today)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", total)
}
