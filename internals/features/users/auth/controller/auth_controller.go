// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "skillup_backend/internals/helpers"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// =======================
// 🔑 POST /jwt
// Sign payload dari caller (claims bebas), umur 15 hari, set cookie http-only.
// =======================
func (ctrl *AuthController) IssueToken(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := helper.SignToken(payload, helper.TokenTTL)
	if err != nil {
		log.Println("[ERROR] sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	helper.SetAuthCookie(c, token)
	return c.JSON(fiber.Map{"success": true})
}

// =======================
// 🚪 GET /logout
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	helper.ClearAuthCookie(c)
	return c.JSON(fiber.Map{"success": true})
}
