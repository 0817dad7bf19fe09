package api

import "context"

// Dashboard fetches the signed-in influencer's dashboard.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	if err := c.t.GetJSON(ctx, "/analytics/dashboard", &out); err != nil {
		return Dashboard{}, err
	}
	return out, nil
}

// AddAffiliate registers an affiliate link for the signed-in influencer.
func (c *Client) AddAffiliate(ctx context.Context, req AffiliateRequest) (Affiliate, error) {
	var out Affiliate
	if err := c.t.PostJSON(ctx, "/affiliate", req, &out); err != nil {
		return Affiliate{}, err
	}
	return out, nil
}

// ListAffiliates returns the signed-in influencer's affiliate links.
func (c *Client) ListAffiliates(ctx context.Context) ([]Affiliate, error) {
	var out []Affiliate
	if err := c.t.GetJSON(ctx, "/affiliate", &out); err != nil {
		return nil, err
	}
	return out, nil
}
