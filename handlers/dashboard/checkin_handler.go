package handlers

import (
	"strconv"

	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
)

// CheckInHandler etkinlik girişi isteklerini yönetir.
type CheckInHandler struct {
	checkInService services.ICheckInService
}

// NewCheckInHandler yeni bir CheckInHandler örneği oluşturur.
func NewCheckInHandler(checkInService services.ICheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// CheckInByID (POST /dashboard/api/invitees/:id/checkin) admin panelinden
// ID ile giriş yapar.
func (h *CheckInHandler) CheckInByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz davetli ID"})
	}

	invitee, err := h.checkInService.CheckInByID(c.UserContext(), uint(id))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": invitee})
}

// CheckInBySN (POST /dashboard/api/checkin/:sn) QR okutma akışında seri
// numarası ile giriş yapar.
func (h *CheckInHandler) CheckInBySN(c *fiber.Ctx) error {
	invitee, err := h.checkInService.CheckInBySN(c.UserContext(), c.Params("sn"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": invitee})
}
