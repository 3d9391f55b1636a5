package handlers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

// InviteHandler davetiye gönderimi ve QR kodu indirme isteklerini yönetir.
type InviteHandler struct {
	inviteeService services.IInviteeService
	sendService    services.IInvitationSendService
	baseURL        string
}

// NewInviteHandler yeni bir InviteHandler örneği oluşturur.
func NewInviteHandler(inviteeService services.IInviteeService, sendService services.IInvitationSendService, baseURL string) *InviteHandler {
	return &InviteHandler{
		inviteeService: inviteeService,
		sendService:    sendService,
		baseURL:        baseURL,
	}
}

// SendInvitation (POST /dashboard/api/invitees/:id/send-invite) davetiye
// e-postasını gönderir. Yeniden gönderim serbesttir.
func (h *InviteHandler) SendInvitation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz davetli ID"})
	}

	invitee, err := h.sendService.SendInvitationByID(c.UserContext(), uint(id), h.baseURL)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": invitee})
}

var filenameSafe = regexp.MustCompile(`[^a-zA-Z0-9-]+`)

// DownloadQR (GET /dashboard/api/invitees/:id/qr) davetlinin LCV
// bağlantısını içeren QR kodunu PNG olarak indirir.
func (h *InviteHandler) DownloadQR(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz davetli ID"})
	}

	invitee, err := h.inviteeService.GetInviteeByID(c.UserContext(), uint(id))
	if err != nil {
		return jsonError(c, err)
	}

	png, err := qrcode.Encode(services.RSVPURL(h.baseURL, invitee.SN), qrcode.Medium, 400)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "QR kodu üretilemedi"})
	}

	name := strings.Trim(filenameSafe.ReplaceAllString(invitee.Name, "_"), "_")
	filename := fmt.Sprintf("qr-%s-%s.png", invitee.SN, name)

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(png)
}
