package api

import (
	"context"
	"strings"
)

// RecommendPrefix routes a chat message to the backend's product recommender.
const RecommendPrefix = "recommend "

// SendChatMessage posts a message to the influencer's assistant.
func (c *Client) SendChatMessage(ctx context.Context, message, influencerID string) (ChatResponse, error) {
	var out ChatResponse
	if err := c.t.PostJSON(ctx, "/chat", ChatRequest{Message: message, InfluencerID: influencerID}, &out); err != nil {
		return ChatResponse{}, err
	}
	return out, nil
}

// RecommendProducts asks for product recommendations through the chat endpoint.
func (c *Client) RecommendProducts(ctx context.Context, query, influencerID string) (ChatResponse, error) {
	return c.SendChatMessage(ctx, RecommendPrefix+strings.TrimSpace(query), influencerID)
}
