package middleware

import (
	"strings"
	"time"

	"go-bms-api/internal/model"
	"go-bms-api/internal/repository"
	"go-bms-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie names the HTTPOnly cookie carrying the session token.
const SessionCookie = "bms_session"

const (
	LoginPath = "/login"
	AdminHome = "/admin/dashboard"
	UserHome  = "/sales"
)

// SetSessionCookie establishes the session on the response.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// ClearSessionCookie tears the session down.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// LandingPath maps an identity to its role-appropriate landing view.
func LandingPath(user *model.User) string {
	if user.IsStaff {
		return AdminHome
	}
	return UserHome
}

// RequireAuth resolves the session token (cookie first, Bearer header as a
// fallback), loads the identity from the store and stashes it in the
// request context. Anonymous requests are redirected to the login view.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireStaff gates the admin variant of a flow. Regular users are sent
// to their own landing view, never shown a 403.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsStaff {
			return c.Redirect(UserHome, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireNonStaff gates the regular-user variant of a flow. Staff hitting
// it are sent to the admin dashboard instead.
func RequireNonStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.IsStaff {
			return c.Redirect(AdminHome, fiber.StatusFound)
		}
		return c.Next()
	}
}

// CurrentUser returns the identity stashed by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	if user, ok := c.Locals("user").(*model.User); ok {
		return user
	}
	return nil
}

// OptionalAuth resolves the identity when a session exists but lets
// anonymous requests through; signup and login use it to short-circuit
// already-authenticated callers.
func OptionalAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return c.Next()
		}
		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Next()
		}
		if user, err := userRepo.FindByID(claims.UserID); err == nil {
			c.Locals("user", user)
		}
		return c.Next()
	}
}
