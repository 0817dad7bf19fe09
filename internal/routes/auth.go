package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avatar-commerce/avatarcommerce/internal/auth"
)

// RegisterAuthRoutes wires login and registration.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	if rateLimiter != nil {
		r.Post("/login", rateLimiter, h.Login)
	} else {
		r.Post("/login", h.Login)
	}
	r.Post("/register", h.Register)
}
