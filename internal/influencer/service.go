package influencer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avatar-commerce/avatarcommerce/internal/identity"
	"github.com/avatar-commerce/avatarcommerce/internal/notification"
)

const (
	avatarIDPrefix = "avatar_"
	defaultVoiceID = "voice_default"
	maxUploadBytes = 10 << 20
)

// Directory resolves users; *identity.Service satisfies it.
type Directory interface {
	Get(ctx context.Context, id string) (identity.User, error)
}

// Upload is an avatar source image.
type Upload struct {
	InfluencerID string
	FileName     string
	VoiceID      string
	Content      io.Reader
}

// Service manages influencer avatars. Uploaded images are kept under
// assetDir/<influencer id>/.
type Service struct {
	repo     Repository
	users    Directory
	assetDir string
	notifier notification.Notifier
	logger   *slog.Logger
}

func NewService(repo Repository, users Directory, assetDir string, notifier notification.Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, users: users, assetDir: assetDir, notifier: notifier, logger: logger}
}

// CreateAvatar stores the image and records a new avatar for the influencer.
func (s *Service) CreateAvatar(ctx context.Context, up Upload) (Avatar, error) {
	if err := s.requireInfluencer(ctx, up.InfluencerID); err != nil {
		return Avatar{}, err
	}
	if up.Content == nil {
		return Avatar{}, ErrEmptyUpload
	}

	avatarID := avatarIDPrefix + uuid.NewString()
	ext := strings.ToLower(filepath.Ext(up.FileName))
	if ext == "" {
		ext = ".jpg"
	}
	dir := filepath.Join(s.assetDir, up.InfluencerID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Avatar{}, fmt.Errorf("create asset dir: %w", err)
	}
	path := filepath.Join(dir, avatarID+ext)
	if err := writeAsset(path, up.Content); err != nil {
		return Avatar{}, err
	}

	voice := strings.TrimSpace(up.VoiceID)
	if voice == "" {
		voice = defaultVoiceID
	}
	avatar := Avatar{
		InfluencerID: up.InfluencerID,
		AvatarID:     avatarID,
		AssetPath:    path,
		VoiceID:      voice,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, avatar); err != nil {
		os.Remove(path)
		return Avatar{}, err
	}
	s.logger.Info("avatar created", slog.String("influencer_id", avatar.InfluencerID), slog.String("avatar_id", avatarID))
	msg := notification.Message{Kind: notification.KindAvatarReady, Destination: avatar.InfluencerID, Body: "Your avatar " + avatarID + " is ready"}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("avatar notification failed", slog.String("influencer_id", avatar.InfluencerID), slog.Any("error", err))
	}
	return avatar, nil
}

// Get returns the influencer's avatar. An influencer without one yields an
// Avatar with only InfluencerID set.
func (s *Service) Get(ctx context.Context, influencerID string) (Avatar, error) {
	avatar, err := s.repo.FindByInfluencer(ctx, influencerID)
	if err == nil {
		return avatar, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Avatar{}, err
	}
	if err := s.requireInfluencer(ctx, influencerID); err != nil {
		return Avatar{}, err
	}
	return Avatar{InfluencerID: influencerID}, nil
}

// HasAvatar reports whether influencerID has created an avatar.
func (s *Service) HasAvatar(ctx context.Context, influencerID string) (Avatar, bool) {
	avatar, err := s.repo.FindByInfluencer(ctx, influencerID)
	return avatar, err == nil
}

func (s *Service) requireInfluencer(ctx context.Context, id string) error {
	user, err := s.users.Get(ctx, id)
	if errors.Is(err, identity.ErrUserNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !user.Profile().IsInfluencer() {
		return ErrNotInfluencer
	}
	return nil
}

func writeAsset(path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(r, maxUploadBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && n == 0 {
		err = ErrEmptyUpload
	}
	if err == nil && n > maxUploadBytes {
		err = ErrUploadTooLarge
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
