package handler

import (
	"errors"

	"go-bms-api/internal/model"
	"go-bms-api/internal/service"
	"go-bms-api/pkg/flash"

	"github.com/gofiber/fiber/v2"
)

const adminUsersHome = "/admin/users"

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers shows every account
// GET /admin/users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return fail(c, err)
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}

	return c.JSON(fiber.Map{
		"users":    responses,
		"messages": flash.Drain(c),
	})
}

// DeleteUser removes an account and, through the cascade, everything it
// created. POST deletes; any other method answers the bare acknowledgment.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.JSON(fiber.Map{"success": true})
	}

	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, service.ErrNotFound)
	}

	if err := h.userService.Delete(id, currentUser(c)); err != nil {
		if errors.Is(err, service.ErrSelfDelete) {
			flash.Error(c, "Cannot delete your own account")
			return c.Redirect(adminUsersHome, fiber.StatusFound)
		}
		return fail(c, err)
	}

	flash.Success(c, "User deleted successfully")
	return c.Redirect(adminUsersHome, fiber.StatusFound)
}
