package handler

import (
	"errors"

	"go-bms-api/internal/middleware"
	"go-bms-api/internal/model"
	"go-bms-api/internal/service"
	"go-bms-api/pkg/flash"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func currentUser(c *fiber.Ctx) *model.User {
	return middleware.CurrentUser(c)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// fail maps a service error onto the response taxonomy: validation
// failures redisplay with one notification per field; not-found and
// ownership misses redirect to the caller's landing view so nothing
// leaks about whether the row exists; the rest is a plain 500.
func fail(c *fiber.Ctx, err error) error {
	if verrs, ok := service.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verrs})
	}
	if errors.Is(err, service.ErrNotFound) {
		flash.Error(c, "Record not found")
		return c.Redirect(middleware.LandingPath(currentUser(c)), fiber.StatusFound)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
