package routes

import (
	"fercullen.events/configs/configsapp"
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
// Servisler burada bir kez kurulur ve rota gruplarına aktarılır.
func SetupRoutes(app *fiber.App, cfg *configsapp.Config) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama

	// --- Servisler ---
	authService := services.NewAuthService(cfg.JWTSecret)
	inviteeService := services.NewInviteeService()
	rsvpService := services.NewRSVPService()
	checkInService := services.NewCheckInService()
	statsService := services.NewStatsService()
	mailService := services.NewMailService(cfg)
	sendService := services.NewInvitationSendService(mailService)
	importService := services.NewImportService(inviteeService, sendService)

	// --- Rota Grupları ---
	registerAuthRoutes(app, authService)
	registerDashboardRoutes(app, cfg, authService, inviteeService, checkInService, statsService, sendService, importService)
	registerRSVPRoutes(app, inviteeService, rsvpService)

	// --- Kök URL ve sağlık kontrolü ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "fercullen-events", "status": "ok"})
	})

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page Not Found"}, "layouts/main")
	}
}
