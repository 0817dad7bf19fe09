package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/avatar-commerce/avatarcommerce/internal/gateway"
)

const (
	defaultAvatarFileName = "avatar.jpg"
	defaultAvatarType     = "image/jpeg"
)

// CreateAvatar uploads an image and asks the backend to build a digital avatar.
// Each call carries a fresh Idempotency-Key so a retried upload is not
// processed twice.
func (c *Client) CreateAvatar(ctx context.Context, up AvatarUpload) (AvatarResponse, error) {
	if up.InfluencerID == "" {
		return AvatarResponse{}, fmt.Errorf("influencer id is required")
	}
	if up.Content == nil {
		return AvatarResponse{}, fmt.Errorf("avatar image is required")
	}
	name := up.FileName
	if name == "" {
		name = defaultAvatarFileName
	}
	mediaType := up.MediaType
	if mediaType == "" {
		mediaType = defaultAvatarType
	}
	header := http.Header{}
	header.Set("Idempotency-Key", uuid.NewString())

	var out AvatarResponse
	err := c.t.PostMultipart(ctx, "/create-avatar",
		map[string]string{"influencer_id": up.InfluencerID},
		[]gateway.FilePart{{Field: "file", FileName: name, ContentType: mediaType, Content: up.Content}},
		header, &out)
	if err != nil {
		return AvatarResponse{}, err
	}
	return out, nil
}

// GetInfluencer fetches influencer data including avatar information.
func (c *Client) GetInfluencer(ctx context.Context, influencerID string) (Influencer, error) {
	var out Influencer
	if err := c.t.GetJSON(ctx, "/influencers/"+url.PathEscape(influencerID), &out); err != nil {
		return Influencer{}, err
	}
	return out, nil
}
