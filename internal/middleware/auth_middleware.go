package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-agritrace/internal/model"
	"go-agritrace/internal/session"
	"go-agritrace/pkg/jwt"
)

// RequireAuth validates the bearer token, checks it against the active
// session, and sets the identity in context for downstream handlers.
func RequireAuth(state *session.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		tokenString := parts[1]

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Only the single active session may act; a newer login or a
		// logout revokes tokens from earlier sessions.
		if !state.IsActive(claims.SessionID) {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in elsewhere)"})
		}

		c.Locals("user_identity", claims.Identity)
		c.Locals("user_role", claims.Role)
		c.Locals("session_id", claims.SessionID)

		return c.Next()
	}
}

// RequireRole rejects sessions whose role does not match the operation's
// tag. The UI hides mismatched forms, but the API enforces it anyway.
func RequireRole(role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals("user_role").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No role found"})
		}

		if current != string(role) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires the '" + string(role) + "' role",
			})
		}

		return c.Next()
	}
}
