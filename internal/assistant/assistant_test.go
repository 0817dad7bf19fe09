package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/avatar-commerce/avatarcommerce/internal/catalog"
	"github.com/avatar-commerce/avatarcommerce/internal/influencer"
	"github.com/avatar-commerce/avatarcommerce/internal/logging"
	"github.com/avatar-commerce/avatarcommerce/internal/notification"
)

type fakeAvatars map[string]influencer.Avatar

func (f fakeAvatars) Get(_ context.Context, id string) (influencer.Avatar, error) {
	a, ok := f[id]
	if !ok {
		return influencer.Avatar{}, influencer.ErrNotFound
	}
	return a, nil
}

func newService() *Service {
	avatars := fakeAvatars{
		"plain":  {InfluencerID: "plain"},
		"avatar": {InfluencerID: "avatar", AvatarID: "avatar_1"},
	}
	return NewService(catalog.Default(), avatars, "https://cdn.test/videos/", notification.NewLoggerNotifier(logging.Discard()), logging.Discard())
}

func TestRecommendUsesCatalog(t *testing.T) {
	svc := newService()
	resp, err := svc.Reply(context.Background(), "Recommend headphones", "plain")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if !strings.Contains(resp.Text, "Wireless Noise Cancelling Headphones ($249.99)") {
		t.Fatalf("unexpected reply %q", resp.Text)
	}
	if resp.VideoURL != "" {
		t.Fatalf("expected no video without avatar, got %s", resp.VideoURL)
	}

	resp, err = svc.Reply(context.Background(), "recommend submarine", "plain")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if !strings.HasPrefix(resp.Text, "I couldn't find") {
		t.Fatalf("unexpected reply %q", resp.Text)
	}
}

func TestVideoOnlyWithAvatar(t *testing.T) {
	svc := newService()
	resp, err := svc.Reply(context.Background(), "hello", "avatar")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if !strings.HasPrefix(resp.VideoURL, "https://cdn.test/videos/avatar_1/") || !strings.HasSuffix(resp.VideoURL, ".mp4") {
		t.Fatalf("unexpected video url %q", resp.VideoURL)
	}
	if svc.PendingChats("avatar") != 1 || svc.PendingChats("plain") != 0 {
		t.Fatalf("unexpected chat counts")
	}
}

func TestReplyValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	if _, err := svc.Reply(ctx, "  ", "plain"); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := svc.Reply(ctx, "hi", ""); !errors.Is(err, ErrMissingInfluencer) {
		t.Fatalf("expected ErrMissingInfluencer, got %v", err)
	}
	if _, err := svc.Reply(ctx, "hi", "ghost"); !errors.Is(err, ErrUnknownInfluencer) {
		t.Fatalf("expected ErrUnknownInfluencer, got %v", err)
	}
}
