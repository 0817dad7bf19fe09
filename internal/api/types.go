package api

import (
	"time"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
)

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the POST /register body.
type RegisterRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Password string           `json:"password"`
	UserType account.UserType `json:"user_type"`
}

// RegisterResponse is returned with 201 from /register.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    account.User `json:"user"`
}

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	Message      string `json:"message"`
	InfluencerID string `json:"influencer_id"`
}

// ChatResponse carries the assistant reply and an optional rendered video.
type ChatResponse struct {
	Text     string `json:"text"`
	VideoURL string `json:"video_url"`
}

// AvatarResponse is returned by /create-avatar.
type AvatarResponse struct {
	AvatarID  string `json:"avatar_id"`
	Message   string `json:"message"`
	AssetPath string `json:"asset_path"`
}

// Influencer is the public influencer profile with avatar details.
type Influencer struct {
	ID                string `json:"id"`
	HeygenAvatarID    string `json:"heygen_avatar_id"`
	OriginalAssetPath string `json:"original_asset_path"`
	VoiceID           string `json:"voice_id"`
}

// Revenue summarises affiliate earnings in dollars.
type Revenue struct {
	Total         float64 `json:"total"`
	LastMonth     float64 `json:"last_month"`
	PercentChange float64 `json:"percent_change"`
}

// InfluencerStatus reports avatar readiness and chat backlog.
type InfluencerStatus struct {
	HasAvatar    bool   `json:"has_avatar"`
	AvatarID     string `json:"avatar_id,omitempty"`
	PendingChats int    `json:"pending_chats"`
}

// Sale is one attributed purchase.
type Sale struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	Customer    string    `json:"customer"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// Dashboard is the GET /analytics/dashboard payload.
type Dashboard struct {
	Revenue     Revenue          `json:"revenue"`
	Status      InfluencerStatus `json:"status"`
	RecentSales []Sale           `json:"recent_sales"`
}

// Affiliate is an influencer's affiliate program link.
type Affiliate struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform"`
	AffiliateID string    `json:"affiliate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// AffiliateRequest is the POST /affiliate body.
type AffiliateRequest struct {
	Platform    string `json:"platform"`
	AffiliateID string `json:"affiliate_id"`
}
