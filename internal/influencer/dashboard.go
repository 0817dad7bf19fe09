package influencer

import (
	"context"
	"math"

	"github.com/avatar-commerce/avatarcommerce/internal/api"
	"github.com/avatar-commerce/avatarcommerce/internal/insights"
)

// ChatCounter reports how many chats an influencer's assistant has taken.
type ChatCounter interface {
	PendingChats(influencerID string) int
}

// Dashboard assembles the influencer dashboard. Revenue comes from the
// sample statistics report; avatar status and chat backlog are live.
func (s *Service) Dashboard(ctx context.Context, influencerID string, chats ChatCounter) (api.Dashboard, error) {
	if err := s.requireInfluencer(ctx, influencerID); err != nil {
		return api.Dashboard{}, err
	}

	report := insights.SampleReport(insights.ThisYear)
	var last, prev float64
	if n := len(report.Monthly); n > 0 {
		last = report.Monthly[n-1].Revenue
		if n > 1 {
			prev = report.Monthly[n-2].Revenue
		}
	}

	status := api.InfluencerStatus{}
	if avatar, ok := s.HasAvatar(ctx, influencerID); ok {
		status.HasAvatar = true
		status.AvatarID = avatar.AvatarID
	}
	if chats != nil {
		status.PendingChats = chats.PendingChats(influencerID)
	}

	return api.Dashboard{
		Revenue: api.Revenue{
			Total:         report.Summary.TotalRevenue,
			LastMonth:     last,
			PercentChange: math.Round(insights.PercentChange(prev, last)*10) / 10,
		},
		Status:      status,
		RecentSales: []api.Sale{},
	}, nil
}
