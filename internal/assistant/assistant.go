// Package assistant produces the dev backend's chat replies on behalf of an
// influencer's avatar.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/avatar-commerce/avatarcommerce/internal/api"
	"github.com/avatar-commerce/avatarcommerce/internal/catalog"
	"github.com/avatar-commerce/avatarcommerce/internal/influencer"
	"github.com/avatar-commerce/avatarcommerce/internal/notification"
)

var (
	ErrEmptyMessage      = errors.New("message is required")
	ErrMissingInfluencer = errors.New("influencer_id is required")
	ErrUnknownInfluencer = errors.New("influencer not found")
)

const maxRecommendations = 3

// Avatars looks up an influencer's avatar; *influencer.Service satisfies it.
type Avatars interface {
	Get(ctx context.Context, influencerID string) (influencer.Avatar, error)
}

// Service answers chat messages and counts chats per influencer.
type Service struct {
	products     *catalog.Catalog
	avatars      Avatars
	videoBaseURL string
	notifier     notification.Notifier
	logger       *slog.Logger

	mu    sync.Mutex
	chats map[string]int
}

func NewService(products *catalog.Catalog, avatars Avatars, videoBaseURL string, notifier notification.Notifier, logger *slog.Logger) *Service {
	return &Service{
		products:     products,
		avatars:      avatars,
		videoBaseURL: strings.TrimRight(videoBaseURL, "/"),
		notifier:     notifier,
		logger:       logger,
		chats:        make(map[string]int),
	}
}

// Reply answers message. Messages starting with "recommend " are answered from
// the catalog. A video URL is attached only when the influencer has an avatar.
func (s *Service) Reply(ctx context.Context, message, influencerID string) (api.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return api.ChatResponse{}, ErrEmptyMessage
	}
	if influencerID == "" {
		return api.ChatResponse{}, ErrMissingInfluencer
	}
	avatar, err := s.avatars.Get(ctx, influencerID)
	if errors.Is(err, influencer.ErrNotFound) || errors.Is(err, influencer.ErrNotInfluencer) {
		return api.ChatResponse{}, ErrUnknownInfluencer
	}
	if err != nil {
		return api.ChatResponse{}, err
	}

	s.mu.Lock()
	s.chats[influencerID]++
	s.mu.Unlock()
	msg := notification.Message{Kind: notification.KindNewChat, Destination: influencerID, Body: message}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("chat notification failed", slog.String("influencer_id", influencerID), slog.Any("error", err))
	}

	var text string
	if query, ok := cutPrefixFold(message, api.RecommendPrefix); ok {
		text = s.recommend(query)
	} else {
		text = converse(message)
	}

	resp := api.ChatResponse{Text: text}
	if avatar.AvatarID != "" {
		resp.VideoURL = fmt.Sprintf("%s/%s/%s.mp4", s.videoBaseURL, avatar.AvatarID, uuid.NewString())
	}
	return resp, nil
}

// PendingChats implements influencer.ChatCounter.
func (s *Service) PendingChats(influencerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chats[influencerID]
}

func (s *Service) recommend(query string) string {
	matches := s.products.Search(query)
	if len(matches) == 0 {
		return "I couldn't find products matching that. Try asking about electronics, wearables or accessories."
	}
	if len(matches) > maxRecommendations {
		matches = matches[:maxRecommendations]
	}
	parts := make([]string, 0, len(matches))
	for _, p := range matches {
		parts = append(parts, fmt.Sprintf("%s (%s)", p.Title, p.DisplayPrice()))
	}
	return "Here are my picks for you: " + strings.Join(parts, ", ") + "."
}

func converse(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.HasPrefix(lower, "hi") || strings.HasPrefix(lower, "hello") || strings.HasPrefix(lower, "hey"):
		return "Hi there! Ask me for product recommendations any time."
	case strings.Contains(lower, "price") || strings.Contains(lower, "cost"):
		return "Prices are listed on each product page. Want me to recommend something in your budget?"
	default:
		return "Thanks for your message! Try \"recommend headphones\" to see what I'd pick."
	}
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return strings.TrimSpace(s[len(prefix):]), true
}

// Handler exposes POST /chat.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Chat(c *fiber.Ctx) error {
	var req api.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.svc.Reply(c.UserContext(), req.Message, req.InfluencerID)
	switch {
	case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrMissingInfluencer):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnknownInfluencer):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case err != nil:
		return err
	}
	return c.JSON(resp)
}
