// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"skillup_backend/internals/configs"
	"skillup_backend/internals/constants"
)

// Locals key untuk claims hasil decode
const LocClaims = "user"

// AuthMiddleware memverifikasi JWT dari cookie "token".
// Sukses → claims disimpan di Locals, lanjut ke handler.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(constants.TokenCookieName)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
		}

		// Simpan claims ke context (dipakai handler via c.Locals)
		c.Locals(LocClaims, claims)
		if email, ok := claims["email"].(string); ok {
			c.Locals("email", email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"]
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	var expAt time.Time
	switch v := exp.(type) {
	case float64:
		expAt = time.Unix(int64(v), 0)
	case int64:
		expAt = time.Unix(v, 0)
	default:
		return jwt.ErrTokenInvalidClaims
	}
	if time.Now().After(expAt.Add(leeway)) {
		return jwt.ErrTokenExpired
	}
	return nil
}
