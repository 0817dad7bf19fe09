package influencer

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/avatar-commerce/avatarcommerce/internal/api"
)

// Handler exposes avatar and dashboard endpoints.
type Handler struct {
	svc   *Service
	chats ChatCounter
}

func NewHandler(svc *Service, chats ChatCounter) *Handler {
	return &Handler{svc: svc, chats: chats}
}

// CreateAvatar accepts a multipart upload with "file" and "influencer_id".
// Influencers may only create their own avatar.
func (h *Handler) CreateAvatar(c *fiber.Ctx) error {
	influencerID := c.FormValue("influencer_id")
	if influencerID == "" {
		return fiber.NewError(http.StatusBadRequest, "influencer_id is required")
	}
	if uid, _ := c.Locals("user_id").(string); uid != influencerID {
		return fiber.NewError(http.StatusForbidden, "cannot create an avatar for another influencer")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, ErrEmptyUpload.Error())
	}
	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	avatar, err := h.svc.CreateAvatar(c.UserContext(), Upload{
		InfluencerID: influencerID,
		FileName:     fh.Filename,
		VoiceID:      c.FormValue("voice_id"),
		Content:      f,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(http.StatusCreated).JSON(api.AvatarResponse{
		AvatarID:  avatar.AvatarID,
		Message:   "Avatar created successfully",
		AssetPath: avatar.AssetPath,
	})
}

// Get returns an influencer's avatar details.
func (h *Handler) Get(c *fiber.Ctx) error {
	avatar, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(api.Influencer{
		ID:                avatar.InfluencerID,
		HeygenAvatarID:    avatar.AvatarID,
		OriginalAssetPath: avatar.AssetPath,
		VoiceID:           avatar.VoiceID,
	})
}

// Dashboard returns the signed-in influencer's dashboard.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	dash, err := h.svc.Dashboard(c.UserContext(), uid, h.chats)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(dash)
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotInfluencer):
		return fiber.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrEmptyUpload):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUploadTooLarge):
		return fiber.NewError(http.StatusRequestEntityTooLarge, err.Error())
	default:
		return err
	}
}
