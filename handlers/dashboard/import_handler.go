package handlers

import (
	"strings"

	"fercullen.events/configs/configslog"
	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ImportHandler toplu CSV içe aktarma isteklerini yönetir.
type ImportHandler struct {
	importService services.IImportService
	baseURL       string
}

// NewImportHandler yeni bir ImportHandler örneği oluşturur.
func NewImportHandler(importService services.IImportService, baseURL string) *ImportHandler {
	return &ImportHandler{importService: importService, baseURL: baseURL}
}

// ImportCSV (POST /dashboard/api/invitees/import) multipart 'file'
// alanındaki CSV dosyasını içe aktarır.
func (h *ImportHandler) ImportCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "CSV dosyası yüklenmedi"})
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Yalnızca .csv dosyaları kabul edilir"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		configslog.Log.Error("ImportCSV: dosya açılamadı", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Dosya okunamadı"})
	}
	defer file.Close()

	result, err := h.importService.ImportCSV(c.UserContext(), file, h.baseURL)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "results": result})
}

// DownloadTemplate (GET /dashboard/api/invitees/import/template) örnek
// CSV şablonunu indirir.
func (h *ImportHandler) DownloadTemplate(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invitees-template.csv"`)
	return c.SendString(services.CSVTemplate())
}
