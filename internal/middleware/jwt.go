package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
	"github.com/avatar-commerce/avatarcommerce/internal/auth"
)

const (
	localsUserID   = "user_id"
	localsUserType = "user_type"
)

// JWTAuth validates bearer access tokens and exposes the subject as the
// "user_id" local.
func JWTAuth(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		claims, err := tokens.Parse(strings.TrimSpace(authz[len("Bearer "):]))
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals(localsUserID, claims.Subject)
		c.Locals(localsUserType, claims.UserType)
		return c.Next()
	}
}

// RequireInfluencer rejects callers whose token is not an influencer's.
// It must run after JWTAuth.
func RequireInfluencer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if t, _ := c.Locals(localsUserType).(account.UserType); t != account.Influencer {
			return fiber.NewError(http.StatusForbidden, "influencer account required")
		}
		return c.Next()
	}
}
