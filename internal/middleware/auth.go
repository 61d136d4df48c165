package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
	"github.com/monastery360/datastore/internal/types"
)

// RequireUser validates that a user is signed in
func RequireUser(ctx *services.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, ctx, false, "data.authorization.user")
	}
}

// RequireAdmin validates that the signed-in user holds an admin role
func RequireAdmin(ctx *services.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, ctx, true, "data.authorization.admin")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, ctx *services.Context, admin bool, errorType string) error {
	user := ctx.CurrentUser()
	if user == nil {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "No active session",
			Type:    errorType,
		}
	}

	if !user.Active {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "This account has been disabled",
			Type:    errorType,
		}
	}

	if admin && !models.IsAdminRole(user.Role) {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Admin role required",
			Type:    errorType,
		}
	}

	c.Locals("user", user)

	return c.Next()
}
