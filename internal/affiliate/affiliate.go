// Package affiliate keeps the affiliate program links influencers register.
package affiliate

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/avatar-commerce/avatarcommerce/internal/api"
)

var (
	ErrMissingPlatform = errors.New("platform is required")
	ErrMissingID       = errors.New("affiliate_id is required")
	ErrDuplicate       = errors.New("affiliate link already registered")
)

// Link is one affiliate program membership.
type Link struct {
	ID           string
	InfluencerID string
	Platform     string
	AffiliateID  string
	CreatedAt    time.Time
}

// Service stores links in memory, newest last.
type Service struct {
	mu    sync.RWMutex
	links map[string][]Link
	now   func() time.Time
}

func NewService() *Service {
	return &Service{links: make(map[string][]Link), now: time.Now}
}

// Add registers a link. Platform names are case-insensitive and the same
// platform/id pair may only be added once per influencer.
func (s *Service) Add(_ context.Context, influencerID, platform, affiliateID string) (Link, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	affiliateID = strings.TrimSpace(affiliateID)
	if platform == "" {
		return Link{}, ErrMissingPlatform
	}
	if affiliateID == "" {
		return Link{}, ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.links[influencerID] {
		if l.Platform == platform && l.AffiliateID == affiliateID {
			return Link{}, ErrDuplicate
		}
	}
	link := Link{
		ID:           uuid.NewString(),
		InfluencerID: influencerID,
		Platform:     platform,
		AffiliateID:  affiliateID,
		CreatedAt:    s.now().UTC(),
	}
	s.links[influencerID] = append(s.links[influencerID], link)
	return link, nil
}

// List returns the influencer's links ordered by creation time.
func (s *Service) List(_ context.Context, influencerID string) []Link {
	s.mu.RLock()
	out := append([]Link(nil), s.links[influencerID]...)
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Handler exposes POST and GET /affiliate for the signed-in influencer.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Add(c *fiber.Ctx) error {
	var req api.AffiliateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	uid, _ := c.Locals("user_id").(string)
	link, err := h.svc.Add(c.UserContext(), uid, req.Platform, req.AffiliateID)
	switch {
	case errors.Is(err, ErrDuplicate):
		return fiber.NewError(http.StatusConflict, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(toAPI(link))
}

func (h *Handler) List(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	links := h.svc.List(c.UserContext(), uid)
	out := make([]api.Affiliate, 0, len(links))
	for _, l := range links {
		out = append(out, toAPI(l))
	}
	return c.JSON(out)
}

func toAPI(l Link) api.Affiliate {
	return api.Affiliate{ID: l.ID, Platform: l.Platform, AffiliateID: l.AffiliateID, CreatedAt: l.CreatedAt}
}
