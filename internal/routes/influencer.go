package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avatar-commerce/avatarcommerce/internal/affiliate"
	"github.com/avatar-commerce/avatarcommerce/internal/assistant"
	"github.com/avatar-commerce/avatarcommerce/internal/influencer"
)

// RegisterChatRoutes wires the public chat endpoint and influencer lookup.
func RegisterChatRoutes(r fiber.Router, chat *assistant.Handler, influencers *influencer.Handler) {
	r.Post("/chat", chat.Chat)
	r.Get("/influencers/:id", influencers.Get)
}

// RegisterInfluencerRoutes wires the influencer-only endpoints. guard runs in
// front of every route it registers and nowhere else. idempotency may be nil
// when no Redis is configured.
func RegisterInfluencerRoutes(r fiber.Router, h *influencer.Handler, affiliates *affiliate.Handler, guard []fiber.Handler, idempotency fiber.Handler) {
	chain := func(handlers ...fiber.Handler) []fiber.Handler {
		out := make([]fiber.Handler, 0, len(guard)+len(handlers))
		out = append(out, guard...)
		for _, fn := range handlers {
			if fn != nil {
				out = append(out, fn)
			}
		}
		return out
	}

	r.Post("/create-avatar", chain(idempotency, h.CreateAvatar)...)
	r.Get("/analytics/dashboard", chain(h.Dashboard)...)
	r.Post("/affiliate", chain(affiliates.Add)...)
	r.Get("/affiliate", chain(affiliates.List)...)
}
