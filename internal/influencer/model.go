package influencer

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("influencer not found")
	ErrNotInfluencer  = errors.New("only influencers can create avatars")
	ErrEmptyUpload    = errors.New("avatar image is required")
	ErrUploadTooLarge = errors.New("avatar image exceeds 10MB")
)

// Avatar is the digital avatar built from an influencer's uploaded image.
// An influencer has at most one; creating another replaces it.
type Avatar struct {
	InfluencerID string
	AvatarID     string
	AssetPath    string
	VoiceID      string
	CreatedAt    time.Time
}
