package handlers

import (
	"fercullen.events/configs/configslog"
	"fercullen.events/models"
	"fercullen.events/pkg/queryparams"
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InviteeHandler dashboard davetli CRUD isteklerini yönetir.
type InviteeHandler struct {
	inviteeService services.IInviteeService
	sendService    services.IInvitationSendService
	baseURL        string
}

// NewInviteeHandler yeni bir InviteeHandler örneği oluşturur.
func NewInviteeHandler(inviteeService services.IInviteeService, sendService services.IInvitationSendService, baseURL string) *InviteeHandler {
	return &InviteeHandler{
		inviteeService: inviteeService,
		sendService:    sendService,
		baseURL:        baseURL,
	}
}

// ListInvitees (GET /dashboard/api/invitees) arama/filtre/sıralama
// parametreleriyle sayfalı davetli listesi döndürür.
func (h *InviteeHandler) ListInvitees(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sorgu parametreleri"})
	}

	result, err := h.inviteeService.ListInvitees(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("ListInvitees: liste alınamadı", zap.Error(err))
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       result.Data,
		"pagination": result.Meta,
	})
}

// CreateInvitee (POST /dashboard/api/invitees) yeni davetli oluşturur.
// email_invite_flag açıksa ve e-posta varsa davetiye gönderimi denenir;
// gönderim hatası kaydı geri almaz.
func (h *InviteeHandler) CreateInvitee(c *fiber.Ctx) error {
	var data services.InviteeCreate
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	invitee, err := h.inviteeService.CreateInvitee(c.UserContext(), data)
	if err != nil {
		return jsonError(c, err)
	}

	if invitee.EmailInviteFlag && invitee.Email != "" {
		if updated, sendErr := h.sendService.SendInvitationBySN(c.UserContext(), invitee.SN, h.baseURL); sendErr != nil {
			configslog.Log.Warn("CreateInvitee: otomatik davetiye gönderimi başarısız",
				zap.String("sn", invitee.SN), zap.Error(sendErr))
		} else {
			invitee = updated
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": invitee})
}

// GetInvitee (GET /dashboard/api/invitees/:sn) tek davetliyi döndürür.
func (h *InviteeHandler) GetInvitee(c *fiber.Ctx) error {
	invitee, err := h.inviteeService.GetInviteeBySN(c.UserContext(), c.Params("sn"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": invitee})
}

// UpdateInvitee (PUT /dashboard/api/invitees/:sn) iletişim alanlarını
// kısmen günceller. SN ve durum alanları bu uçtan değiştirilemez.
func (h *InviteeHandler) UpdateInvitee(c *fiber.Ctx) error {
	var updates models.InviteeUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	invitee, err := h.inviteeService.UpdateInvitee(c.UserContext(), c.Params("sn"), updates)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": invitee})
}

// DeleteInvitee (DELETE /dashboard/api/invitees/:sn) davetliyi kalıcı siler.
func (h *InviteeHandler) DeleteInvitee(c *fiber.Ctx) error {
	if err := h.inviteeService.DeleteInvitee(c.UserContext(), c.Params("sn")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Davetli silindi"})
}
