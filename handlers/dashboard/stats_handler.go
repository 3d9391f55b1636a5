package handlers

import (
	"fercullen.events/configs/configslog"
	"fercullen.events/repositories"
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler istatistik ve davetiye logu isteklerini yönetir.
type StatsHandler struct {
	statsService services.IStatsService
	logRepo      repositories.IInvitationLogRepository
}

// NewStatsHandler yeni bir StatsHandler örneği oluşturur.
func NewStatsHandler(statsService services.IStatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logRepo:      repositories.NewInvitationLogRepository(),
	}
}

// GetStats (GET /dashboard/api/stats) güncel sayıları döndürür.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsService.ComputeStats(c.UserContext())
	if err != nil {
		configslog.Log.Error("GetStats: istatistik hesaplanamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "İstatistikler alınamadı"})
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

// ListLogs (GET /dashboard/api/logs) davetiye loglarını yeniden eskiye
// sıralı döndürür. sn parametresi verilirse tek davetliye filtrelenir.
func (h *StatsHandler) ListLogs(c *fiber.Ctx) error {
	sn := c.Query("sn")

	var logs interface{}
	var err error
	if sn != "" {
		logs, err = h.logRepo.FindBySN(c.UserContext(), sn)
	} else {
		logs, err = h.logRepo.FindAll(c.UserContext())
	}
	if err != nil {
		configslog.Log.Error("ListLogs: loglar alınamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Loglar alınamadı"})
	}
	return c.JSON(fiber.Map{"success": true, "logs": logs})
}
