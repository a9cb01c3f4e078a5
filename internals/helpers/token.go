// file: internals/helpers/token.go
package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"skillup_backend/internals/configs"
	"skillup_backend/internals/constants"
)

// TokenTTL: umur cookie auth (15 hari, mengikuti kontrak lama)
const TokenTTL = 15 * 24 * time.Hour

// SignToken menandatangani payload dari caller (claims bebas) dengan HS256 + exp.
func SignToken(payload map[string]any, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// cookieSameSite: production pakai None (cross-site), selain itu Strict
func cookieSameSite() string {
	if configs.IsProduction() {
		return "None"
	}
	return "Strict"
}

func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     constants.TokenCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: cookieSameSite(),
		Path:     "/",
		Expires:  time.Now().Add(TokenTTL),
	})
}

func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constants.TokenCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: cookieSameSite(),
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
}
