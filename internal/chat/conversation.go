package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avatar-commerce/avatarcommerce/internal/api"
)

// FallbackReply is shown in place of a reply when the backend call fails.
const FallbackReply = "Sorry, something went wrong. Please try again."

// Assistant is the backend used by a Conversation.
type Assistant interface {
	SendChatMessage(ctx context.Context, message, influencerID string) (api.ChatResponse, error)
	RecommendProducts(ctx context.Context, query, influencerID string) (api.ChatResponse, error)
}

// Message is one transcript entry.
type Message struct {
	ID        string
	Text      string
	FromUser  bool
	Timestamp time.Time
	VideoURL  string
}

// Conversation is the transcript of a chat with one influencer's avatar.
type Conversation struct {
	influencerID string
	assistant    Assistant
	now          func() time.Time

	mu           sync.Mutex
	messages     []Message
	currentVideo string
}

// NewConversation starts an empty transcript with influencerID.
func NewConversation(assistant Assistant, influencerID string) *Conversation {
	return &Conversation{influencerID: influencerID, assistant: assistant, now: time.Now}
}

// InfluencerID returns the influencer this conversation talks to.
func (c *Conversation) InfluencerID() string { return c.influencerID }

// Send appends text as a user message and the assistant reply after it.
// Blank input is ignored. On failure the fallback reply is appended and the
// error returned. The returned message is the reply that was appended.
func (c *Conversation) Send(ctx context.Context, text string) (Message, error) {
	return c.exchange(ctx, text, c.assistant.SendChatMessage)
}

// Recommend asks for product recommendations matching query.
func (c *Conversation) Recommend(ctx context.Context, query string) (Message, error) {
	return c.exchange(ctx, query, c.assistant.RecommendProducts)
}

func (c *Conversation) exchange(ctx context.Context, text string, call func(context.Context, string, string) (api.ChatResponse, error)) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, nil
	}
	c.append(Message{ID: uuid.NewString(), Text: text, FromUser: true, Timestamp: c.now()})

	resp, err := call(ctx, text, c.influencerID)
	if err != nil {
		reply := Message{ID: uuid.NewString(), Text: FallbackReply, Timestamp: c.now()}
		c.append(reply)
		return reply, err
	}

	reply := Message{ID: uuid.NewString(), Text: resp.Text, Timestamp: c.now(), VideoURL: resp.VideoURL}
	c.mu.Lock()
	c.messages = append(c.messages, reply)
	if resp.VideoURL != "" {
		c.currentVideo = resp.VideoURL
	}
	c.mu.Unlock()
	return reply, nil
}

// Messages returns the transcript in order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// CurrentVideo is the most recent reply video, empty if none.
func (c *Conversation) CurrentVideo() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentVideo
}

// Clear empties the transcript.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.currentVideo = ""
}

func (c *Conversation) append(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
}
