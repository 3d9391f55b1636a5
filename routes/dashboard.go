package routes

import (
	"fercullen.events/configs/configsapp"
	handlers "fercullen.events/handlers/dashboard" // Dashboard handler'ları
	"fercullen.events/middlewares"
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki JSON API rotalarını tanımlar.
// Tamamı oturum çerezi ile korunur.
func registerDashboardRoutes(
	app *fiber.App,
	cfg *configsapp.Config,
	authService services.IAuthService,
	inviteeService services.IInviteeService,
	checkInService services.ICheckInService,
	statsService services.IStatsService,
	sendService services.IInvitationSendService,
	importService services.IImportService,
) {
	inviteeHandler := handlers.NewInviteeHandler(inviteeService, sendService, cfg.BaseURL)
	checkInHandler := handlers.NewCheckInHandler(checkInService)
	inviteHandler := handlers.NewInviteHandler(inviteeService, sendService, cfg.BaseURL)
	importHandler := handlers.NewImportHandler(importService, cfg.BaseURL)
	statsHandler := handlers.NewStatsHandler(statsService)

	api := app.Group("/dashboard/api")
	api.Use(middlewares.AuthMiddleware(authService))

	// --- Davetli Yönetimi ---
	api.Get("/invitees", inviteeHandler.ListInvitees)
	api.Post("/invitees", inviteeHandler.CreateInvitee)

	// Toplu içe aktarma: :sn rotalarından önce tanımlanmalı.
	api.Post("/invitees/import", importHandler.ImportCSV)
	api.Get("/invitees/import/template", importHandler.DownloadTemplate)

	api.Get("/invitees/:sn", inviteeHandler.GetInvitee)
	api.Put("/invitees/:sn", inviteeHandler.UpdateInvitee)
	api.Delete("/invitees/:sn", inviteeHandler.DeleteInvitee)

	// --- Davetiye ve QR ---
	api.Post("/invitees/:id/send-invite", inviteHandler.SendInvitation)
	api.Get("/invitees/:id/qr", inviteHandler.DownloadQR)

	// --- Giriş (Check-in) ---
	api.Post("/invitees/:id/checkin", checkInHandler.CheckInByID)
	api.Post("/checkin/:sn", checkInHandler.CheckInBySN)

	// --- İstatistik ve Loglar ---
	api.Get("/stats", statsHandler.GetStats)
	api.Get("/logs", statsHandler.ListLogs)
}
