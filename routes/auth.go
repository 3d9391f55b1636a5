package routes

import (
	auth_handlers "fercullen.events/handlers/auth" // İsim çakışmasını önlemek için alias
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, authService services.IAuthService) {
	authHandler := auth_handlers.NewAuthHandler(authService)
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
}
