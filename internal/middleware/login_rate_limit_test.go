package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/avatar-commerce/avatarcommerce/internal/logging"
)

func loginApp(cache *redis.Client, limit int) *fiber.App {
	app := fiber.New()
	app.Post("/login", LoginRateLimit(cache, limit, logging.Discard()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func login(t *testing.T, app *fiber.App, email string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(`{"email":"`+email+`","password":"x"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestLoginRateLimitPerEmail(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()
	app := loginApp(cache, 2)

	for i := 0; i < 2; i++ {
		if status := login(t, app, "a@b.com"); status != fiber.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, status)
		}
	}
	if status := login(t, app, "A@B.com"); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", status)
	}
	if status := login(t, app, "other@b.com"); status != fiber.StatusOK {
		t.Fatalf("expected other email unaffected, got %d", status)
	}
	if ttl := mr.TTL(loginRatePrefix + "a@b.com"); ttl <= 0 {
		t.Fatalf("expected window expiry, got %v", ttl)
	}
}

func TestLoginRateLimitFailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer cache.Close()
	mr.Close()

	app := loginApp(cache, 1)
	for i := 0; i < 3; i++ {
		if status := login(t, app, "a@b.com"); status != fiber.StatusOK {
			t.Fatalf("expected fail-open 200, got %d", status)
		}
	}
	if status := login(t, loginApp(nil, 1), "a@b.com"); status != fiber.StatusOK {
		t.Fatalf("expected no-op without redis, got %d", status)
	}
}
