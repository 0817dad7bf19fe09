package influencer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avatar-commerce/avatarcommerce/internal/identity"
	"github.com/avatar-commerce/avatarcommerce/internal/logging"
	"github.com/avatar-commerce/avatarcommerce/internal/notification"
)

type chatCount int

func (c chatCount) PendingChats(string) int { return int(c) }

func setup(t *testing.T) (*Service, identity.User, identity.User) {
	t.Helper()
	ids := identity.NewService(identity.NewMemoryRepository())
	ctx := context.Background()
	inf, err := ids.Register(ctx, identity.Signup{Name: "Ivy", Email: "i@b.com", Password: "secret123", UserType: "influencer"})
	if err != nil {
		t.Fatalf("register influencer: %v", err)
	}
	cust, err := ids.Register(ctx, identity.Signup{Name: "Cam", Email: "c@b.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register customer: %v", err)
	}
	return NewService(NewMemoryRepository(), ids, t.TempDir(), notification.NewLoggerNotifier(logging.Discard()), logging.Discard()), inf, cust
}

func TestCreateAvatarStoresAsset(t *testing.T) {
	svc, inf, _ := setup(t)
	ctx := context.Background()

	avatar, err := svc.CreateAvatar(ctx, Upload{InfluencerID: inf.ID, FileName: "me.PNG", Content: strings.NewReader("img")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(avatar.AvatarID, avatarIDPrefix) {
		t.Fatalf("expected avatar_ prefix, got %s", avatar.AvatarID)
	}
	if filepath.Ext(avatar.AssetPath) != ".png" || avatar.VoiceID != defaultVoiceID {
		t.Fatalf("unexpected avatar %+v", avatar)
	}
	data, err := os.ReadFile(avatar.AssetPath)
	if err != nil || string(data) != "img" {
		t.Fatalf("asset not written: %q %v", data, err)
	}

	got, err := svc.Get(ctx, inf.ID)
	if err != nil || got.AvatarID != avatar.AvatarID {
		t.Fatalf("get: %+v %v", got, err)
	}
}

func TestCreateAvatarRejections(t *testing.T) {
	svc, inf, cust := setup(t)
	ctx := context.Background()

	if _, err := svc.CreateAvatar(ctx, Upload{InfluencerID: cust.ID, Content: strings.NewReader("img")}); !errors.Is(err, ErrNotInfluencer) {
		t.Fatalf("expected ErrNotInfluencer, got %v", err)
	}
	if _, err := svc.CreateAvatar(ctx, Upload{InfluencerID: "ghost", Content: strings.NewReader("img")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.CreateAvatar(ctx, Upload{InfluencerID: inf.ID, Content: strings.NewReader("")}); !errors.Is(err, ErrEmptyUpload) {
		t.Fatalf("expected ErrEmptyUpload, got %v", err)
	}
	if _, ok := svc.HasAvatar(ctx, inf.ID); ok {
		t.Fatalf("failed uploads must not record an avatar")
	}
}

func TestGetWithoutAvatar(t *testing.T) {
	svc, inf, cust := setup(t)
	got, err := svc.Get(context.Background(), inf.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.InfluencerID != inf.ID || got.AvatarID != "" {
		t.Fatalf("unexpected avatar %+v", got)
	}
	if _, err := svc.Get(context.Background(), cust.ID); !errors.Is(err, ErrNotInfluencer) {
		t.Fatalf("expected ErrNotInfluencer, got %v", err)
	}
}

func TestDashboard(t *testing.T) {
	svc, inf, _ := setup(t)
	ctx := context.Background()

	dash, err := svc.Dashboard(ctx, inf.ID, chatCount(3))
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Status.HasAvatar || dash.Status.PendingChats != 3 {
		t.Fatalf("unexpected status %+v", dash.Status)
	}
	if dash.Revenue.Total <= 0 || dash.RecentSales == nil {
		t.Fatalf("unexpected dashboard %+v", dash)
	}

	avatar, err := svc.CreateAvatar(ctx, Upload{InfluencerID: inf.ID, Content: strings.NewReader("img")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	dash, err = svc.Dashboard(ctx, inf.ID, nil)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !dash.Status.HasAvatar || dash.Status.AvatarID != avatar.AvatarID {
		t.Fatalf("expected avatar in status, got %+v", dash.Status)
	}
}
