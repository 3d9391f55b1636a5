package handlers

import (
	"errors"

	"fercullen.events/configs/configslog"
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler davetlilere açık LCV sayfası ve yanıt isteklerini yönetir.
// Bu rotalar kimlik doğrulaması istemez; davetlinin elindeki seri
// numarası tek anahtar olarak yeterlidir.
type RSVPHandler struct {
	inviteeService services.IInviteeService
	rsvpService    services.IRSVPService
}

// NewRSVPHandler yeni bir RSVPHandler örneği oluşturur.
func NewRSVPHandler(inviteeService services.IInviteeService, rsvpService services.IRSVPService) *RSVPHandler {
	return &RSVPHandler{inviteeService: inviteeService, rsvpService: rsvpService}
}

// ShowPage (GET /rsvp/:sn) davetlinin LCV sayfasını render eder.
func (h *RSVPHandler) ShowPage(c *fiber.Ctx) error {
	invitee, err := h.inviteeService.GetInviteeBySN(c.UserContext(), c.Params("sn"))
	if err != nil {
		if errors.Is(err, services.ErrInviteeNotFound) {
			return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
				"Title": "Invitation Not Found",
			}, "layouts/main")
		}
		configslog.Log.Error("ShowPage: davetli alınamadı", zap.String("sn", c.Params("sn")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
			"Title": "Something Went Wrong",
		}, "layouts/main")
	}

	return c.Render("rsvp/show", fiber.Map{
		"Title":   "Fercullen Launch - RSVP",
		"Invitee": invitee,
	}, "layouts/main")
}

// GetInvitee (GET /api/rsvp/:sn) LCV sayfasının kullandığı davetli
// bilgisini JSON olarak döndürür.
func (h *RSVPHandler) GetInvitee(c *fiber.Ctx) error {
	invitee, err := h.inviteeService.GetInviteeBySN(c.UserContext(), c.Params("sn"))
	if err != nil {
		if errors.Is(err, services.ErrInviteeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Davetiye bulunamadı"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Davetiye alınamadı"})
	}
	return c.JSON(fiber.Map{"success": true, "data": invitee})
}

// SubmitRSVP (POST /api/rsvp/:sn) LCV yanıtını kaydeder.
// Aynı davetli sonradan fikrini değiştirip yeniden yanıt gönderebilir.
func (h *RSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	var submission services.RSVPSubmission
	if err := c.BodyParser(&submission); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	invitee, err := h.rsvpService.SubmitRSVP(c.UserContext(), c.Params("sn"), submission)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInviteeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Davetiye bulunamadı"})
		case errors.Is(err, services.ErrInvalidRSVPStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("SubmitRSVP: yanıt kaydedilemedi", zap.String("sn", c.Params("sn")), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Yanıt kaydedilemedi"})
		}
	}
	return c.JSON(fiber.Map{"success": true, "data": invitee})
}
