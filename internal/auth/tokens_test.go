package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
	"github.com/avatar-commerce/avatarcommerce/internal/identity"
)

func TestIssueAndParse(t *testing.T) {
	tokens, err := NewTokens("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokens: %v", err)
	}
	user := identity.User{ID: "u1", Email: "a@b.com", UserType: account.Influencer}
	signed, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "u1" || claims.UserType != account.Influencer || claims.Email != "a@b.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseRejectsExpiredAndForeignTokens(t *testing.T) {
	tokens, _ := NewTokens("test-secret", time.Minute)
	signed, err := tokens.Issue(identity.User{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tokens.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := tokens.Parse(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token rejected, got %v", err)
	}

	other, _ := NewTokens("other-secret", time.Minute)
	if _, err := other.Parse(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected foreign signature rejected, got %v", err)
	}
	if _, err := other.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected malformed token rejected, got %v", err)
	}
}

func TestNewTokensRequiresSecret(t *testing.T) {
	if _, err := NewTokens("", time.Minute); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestServiceLogin(t *testing.T) {
	ids := identity.NewService(identity.NewMemoryRepository())
	tokens, _ := NewTokens("test-secret", time.Hour)
	svc := NewService(ids, tokens)
	ctx := context.Background()

	registered, err := ids.Register(ctx, identity.Signup{Name: "Cam", Email: "c@b.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := svc.Login(ctx, "c@b.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User.ID != registered.ID || result.User.UserType != account.Customer || result.Token == "" {
		t.Fatalf("unexpected result %+v", result)
	}
	if _, err := svc.Login(ctx, "c@b.com", "nope-nope"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
