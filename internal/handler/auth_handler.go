package handler

import (
	"errors"

	"go-bms-api/internal/middleware"
	"go-bms-api/internal/model"
	"go-bms-api/internal/service"
	"go-bms-api/pkg/flash"
	"go-bms-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest mirrors the signup form: password entered twice.
type SignupRequest struct {
	Username  string `json:"username" form:"username"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Signup handles account creation
// GET|POST /signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	// Already signed in: straight to the role landing, no re-prompt
	if user := currentUser(c); user != nil {
		return c.Redirect(middleware.LandingPath(user), fiber.StatusFound)
	}

	if c.Method() != fiber.MethodPost {
		return c.JSON(fiber.Map{"messages": flash.Drain(c)})
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form body"})
	}

	user, err := h.authService.Signup(req.Username, req.Password1, req.Password2)
	if err != nil {
		return fail(c, err)
	}

	if err := establishSession(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to establish session"})
	}

	flash.Success(c, "Account created successfully!")
	return c.Redirect(middleware.LandingPath(user), fiber.StatusFound)
}

// Login handles authentication
// GET|POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if user := currentUser(c); user != nil {
		return c.Redirect(middleware.LandingPath(user), fiber.StatusFound)
	}

	if c.Method() != fiber.MethodPost {
		return c.JSON(fiber.Map{"messages": flash.Drain(c)})
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form body"})
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One generic notification, never which field was wrong
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"errors": []string{service.ErrInvalidCredentials.Error()},
			})
		}
		return fail(c, err)
	}

	if err := establishSession(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to establish session"})
	}

	flash.Success(c, "Logged in successfully!")
	return c.Redirect(middleware.LandingPath(user), fiber.StatusFound)
}

// Logout tears the session down
// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.Redirect(middleware.LoginPath, fiber.StatusFound)
}

func establishSession(c *fiber.Ctx, user *model.User) error {
	token, err := jwt.GenerateToken(user.ID, user.Username, user.IsStaff)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, token)
	return nil
}
