package middlewares

import (
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
)

// AuthTokenCookie oturum çerezinin adı.
const AuthTokenCookie = "auth-token"

// AuthMiddleware dashboard rotalarını korur. Geçerli bir auth-token
// çerezi olmayan istekler 401 ile reddedilir; geçerli olanlarda
// kullanıcı bilgisi Locals'a yazılır.
func AuthMiddleware(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(AuthTokenCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum gerekli"})
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum geçersiz veya süresi dolmuş"})
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		return c.Next()
	}
}
