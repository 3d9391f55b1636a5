package routes

import (
	rsvp_handlers "fercullen.events/handlers/rsvp"
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
)

// registerRSVPRoutes davetlilere açık LCV rotalarını tanımlar.
// Kimlik doğrulaması yoktur; seri numarası tek anahtardır.
func registerRSVPRoutes(app *fiber.App, inviteeService services.IInviteeService, rsvpService services.IRSVPService) {
	rsvpHandler := rsvp_handlers.NewRSVPHandler(inviteeService, rsvpService)

	app.Get("/rsvp/:sn", rsvpHandler.ShowPage)
	app.Get("/api/rsvp/:sn", rsvpHandler.GetInvitee)
	app.Post("/api/rsvp/:sn", rsvpHandler.SubmitRSVP)
}
