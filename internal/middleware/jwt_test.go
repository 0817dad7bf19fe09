package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
	"github.com/avatar-commerce/avatarcommerce/internal/auth"
	"github.com/avatar-commerce/avatarcommerce/internal/identity"
)

func TestJWTAuthAndRequireInfluencer(t *testing.T) {
	tokens, err := auth.NewTokens("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokens: %v", err)
	}
	app := fiber.New()
	app.Get("/me", JWTAuth(tokens), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(localsUserID).(string))
	})
	app.Get("/dash", JWTAuth(tokens), RequireInfluencer(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	customer, _ := tokens.Issue(identity.User{ID: "c1", UserType: account.Customer})
	influencer, _ := tokens.Issue(identity.User{ID: "i1", UserType: account.Influencer})

	cases := []struct {
		path   string
		authz  string
		status int
	}{
		{"/me", "", fiber.StatusUnauthorized},
		{"/me", "Bearer junk", fiber.StatusUnauthorized},
		{"/me", "Bearer " + customer, fiber.StatusOK},
		{"/dash", "Bearer " + customer, fiber.StatusForbidden},
		{"/dash", "Bearer " + influencer, fiber.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodGet, tc.path, nil)
		if tc.authz != "" {
			req.Header.Set(fiber.HeaderAuthorization, tc.authz)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != tc.status {
			t.Fatalf("%s with %q: expected %d got %d", tc.path, tc.authz, tc.status, resp.StatusCode)
		}
	}
}
