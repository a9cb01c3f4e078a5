// file: internals/features/users/users/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/features/users/users/dto"
	"skillup_backend/internals/features/users/users/repository"
	helper "skillup_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	Store repository.UserStore
}

func NewUserController(store repository.UserStore) *UserController {
	return &UserController{Store: store}
}

// =======================
// ➕ POST /users
// =======================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	user.ID = id

	return helper.JsonCreated(c, "User created", user)
}

// =======================
// 🔎 GET /users/:email (role lookup)
// =======================
func (ctrl *UserController) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	user, err := ctrl.Store.FindByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// kontrak lama: user belum terdaftar bukan error, data null
			return helper.JsonOK(c, "User not registered", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", user)
}

// =======================
// 📄 GET /users?searchTerm= (admin)
// =======================
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	term := c.Query("searchTerm")

	users, err := ctrl.Store.Search(c.UserContext(), term)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", users)
}

// =======================
// 🔎 GET /profile?email=
// =======================
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email parameter is missing")
	}

	user, err := ctrl.Store.FindByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", user)
}

// =======================
// ✏️ PUT /users/update/:email
// Upsert user + cascade role → status pengajuan teacher (satu transaksi)
// =======================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	email := c.Params("email")

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.Store.UpsertWithRoleCascade(c.UserContext(), email, body.ToUpdate()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonUpdated(c, "User updated", nil)
}
