package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avatar-commerce/avatarcommerce/internal/logging"
)

type staticToken string

func (s staticToken) Token(context.Context) (string, error) { return string(s), nil }

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithLogger(logging.Discard())}, opts...)
	c, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestBearerHeaderWhenTokenPresent(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	c.SetTokenSource(staticToken("T1"))

	if err := c.GetJSON(context.Background(), "/influencers/inf7", nil); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if got != "Bearer T1" {
		t.Fatalf("expected Bearer T1, got %q", got)
	}
}

func TestNoHeaderWithoutToken(t *testing.T) {
	var present bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})
	c.SetTokenSource(staticToken(""))

	if err := c.PostJSON(context.Background(), "/login", map[string]string{"email": "a@b.com"}, nil); err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if present {
		t.Fatalf("expected no Authorization header")
	}
}

func TestUnauthorizedInvokesHandlerAndReturnsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	})
	c.SetTokenSource(staticToken("T1"))
	var calls int32
	var rejected string
	c.OnUnauthorized(func(_ context.Context, token string) {
		atomic.AddInt32(&calls, 1)
		rejected = token
	})

	err := c.GetJSON(context.Background(), "/analytics/dashboard", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Message != "token expired" {
		t.Fatalf("expected backend message, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected handler called once, got %d", calls)
	}
	if rejected != "T1" {
		t.Fatalf("expected handler to receive the sent token, got %q", rejected)
	}
}

func TestUnauthorizedWithoutTokenSkipsHandler(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	})
	var called bool
	c.OnUnauthorized(func(context.Context, string) { called = true })

	err := c.PostJSON(context.Background(), "/login", map[string]string{}, nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run for token-less requests")
	}
}

func TestOtherStatusPassesThrough(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})
	var called bool
	c.OnUnauthorized(func(context.Context, string) { called = true })
	c.SetTokenSource(staticToken("T1"))

	err := c.GetJSON(context.Background(), "/chat", nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 StatusError, got %v", err)
	}
	if errors.Is(err, ErrUnauthorized) || called {
		t.Fatalf("500 must not be treated as unauthorized")
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected no retry, got %d hits", hits)
	}
}

func TestNetworkErrorOnTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}, WithTimeout(20*time.Millisecond))

	err := c.GetJSON(context.Background(), "/slow", nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestPostMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Idempotency-Key") != "k1" {
			t.Errorf("expected idempotency key header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if r.FormValue("influencer_id") != "inf7" {
			t.Errorf("expected influencer_id inf7, got %q", r.FormValue("influencer_id"))
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		if hdr.Filename != "me.png" || string(b) != "PNGDATA" {
			t.Errorf("unexpected file %q %q", hdr.Filename, b)
		}
		w.Write([]byte(`{"avatar_id":"avatar_1"}`))
	})

	var out struct {
		AvatarID string `json:"avatar_id"`
	}
	header := http.Header{}
	header.Set("Idempotency-Key", "k1")
	err := c.PostMultipart(context.Background(), "/create-avatar",
		map[string]string{"influencer_id": "inf7"},
		[]FilePart{{Field: "file", FileName: "me.png", ContentType: "image/png", Content: strings.NewReader("PNGDATA")}},
		header, &out)
	if err != nil {
		t.Fatalf("PostMultipart: %v", err)
	}
	if out.AvatarID != "avatar_1" {
		t.Fatalf("expected avatar_1, got %q", out.AvatarID)
	}
}

func TestNewRejectsBadScheme(t *testing.T) {
	if _, err := New("ftp://example.com"); err == nil {
		t.Fatalf("expected error for ftp scheme")
	}
}
