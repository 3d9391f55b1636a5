package handlers

import (
	"errors"

	"fercullen.events/services"

	"github.com/gofiber/fiber/v2"
)

// statusForServiceError servis hatalarını HTTP durum kodlarına çevirir.
// Listede olmayan hatalar 500 olarak ele alınır.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrInviteeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInviteeEmailExists),
		errors.Is(err, services.ErrInviteeSNExists),
		errors.Is(err, services.ErrAlreadyCheckedIn),
		errors.Is(err, services.ErrCannotCheckInDeclined):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInviteeNameRequired),
		errors.Is(err, services.ErrInviteeInvalidEmail),
		errors.Is(err, services.ErrInviteeInvalidInput),
		errors.Is(err, services.ErrInvalidRSVPStatus),
		errors.Is(err, services.ErrInviteeEmailMissing),
		errors.Is(err, services.ErrImportEmptyCSV),
		errors.Is(err, services.ErrImportMissingColumn):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// jsonError servis hatasını tekdüze hata gövdesiyle döndürür.
func jsonError(c *fiber.Ctx, err error) error {
	status := statusForServiceError(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "İşlem gerçekleştirilemedi"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
