package catalog

import "testing"

func TestFilterByCategoryAndQuery(t *testing.T) {
	c := Default()

	if got := c.Filter(CategoryAll, ""); len(got) != 6 {
		t.Fatalf("expected 6 products, got %d", len(got))
	}
	acc := c.Filter("accessories", "")
	if len(acc) != 3 {
		t.Fatalf("expected 3 accessories, got %d", len(acc))
	}
	got := c.Filter("electronics", "SPEAKER")
	if len(got) != 1 || got[0].ID != "4" {
		t.Fatalf("expected speaker, got %+v", got)
	}
	if got := c.Filter("wearables", "keyboard"); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestSearch(t *testing.T) {
	got := Default().Search("headphones or a keyboard")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "5" {
		t.Fatalf("unexpected search result %+v", got)
	}
	if got := Default().Search("   "); got != nil {
		t.Fatalf("expected nil for blank query")
	}
}

func TestDisplayPrice(t *testing.T) {
	p, ok := Default().Get("3")
	if !ok {
		t.Fatalf("expected product 3")
	}
	if p.DisplayPrice() != "$39.99" {
		t.Fatalf("expected $39.99, got %s", p.DisplayPrice())
	}
}
