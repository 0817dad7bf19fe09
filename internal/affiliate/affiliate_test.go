package affiliate

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAddAndList(t *testing.T) {
	svc := NewService()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Minute) }
	ctx := context.Background()

	if _, err := svc.Add(ctx, "inf1", " Amazon ", "ivy-20"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, "inf1", "etsy", "ivyshop"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, "inf2", "amazon", "other"); err != nil {
		t.Fatalf("add: %v", err)
	}

	links := svc.List(ctx, "inf1")
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Platform != "amazon" || links[1].Platform != "etsy" {
		t.Fatalf("unexpected order %+v", links)
	}
	if got := svc.List(ctx, "nobody"); len(got) != 0 {
		t.Fatalf("expected no links, got %+v", got)
	}
}

func TestAddValidation(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	if _, err := svc.Add(ctx, "inf1", "", "x"); !errors.Is(err, ErrMissingPlatform) {
		t.Fatalf("expected ErrMissingPlatform, got %v", err)
	}
	if _, err := svc.Add(ctx, "inf1", "amazon", " "); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if _, err := svc.Add(ctx, "inf1", "amazon", "x"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, "inf1", "AMAZON", "x"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
