package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/avatar-commerce/avatarcommerce/internal/api"
)

type fakeAssistant struct {
	reply      api.ChatResponse
	err        error
	lastMsg    string
	recommends int
}

func (f *fakeAssistant) SendChatMessage(_ context.Context, message, _ string) (api.ChatResponse, error) {
	f.lastMsg = message
	return f.reply, f.err
}

func (f *fakeAssistant) RecommendProducts(_ context.Context, query, _ string) (api.ChatResponse, error) {
	f.recommends++
	f.lastMsg = query
	return f.reply, f.err
}

func TestSendAppendsBothSidesAndTracksVideo(t *testing.T) {
	fa := &fakeAssistant{reply: api.ChatResponse{Text: "Hello!", VideoURL: "https://cdn.example/hello.mp4"}}
	conv := NewConversation(fa, "inf7")

	reply, err := conv.Send(context.Background(), "hi there")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply.Text != "Hello!" || reply.FromUser {
		t.Fatalf("unexpected reply %+v", reply)
	}
	msgs := conv.Messages()
	if len(msgs) != 2 || !msgs[0].FromUser || msgs[0].Text != "hi there" || msgs[1].ID == msgs[0].ID {
		t.Fatalf("unexpected transcript %+v", msgs)
	}
	if conv.CurrentVideo() != "https://cdn.example/hello.mp4" {
		t.Fatalf("expected current video, got %q", conv.CurrentVideo())
	}
}

func TestSendIgnoresBlankInput(t *testing.T) {
	fa := &fakeAssistant{}
	conv := NewConversation(fa, "inf7")
	if _, err := conv.Send(context.Background(), "   "); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(conv.Messages()) != 0 || fa.lastMsg != "" {
		t.Fatalf("expected nothing sent")
	}
}

func TestSendFailureAppendsFallback(t *testing.T) {
	boom := errors.New("boom")
	conv := NewConversation(&fakeAssistant{err: boom}, "inf7")

	reply, err := conv.Send(context.Background(), "hi")
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if reply.Text != FallbackReply {
		t.Fatalf("expected fallback, got %q", reply.Text)
	}
	if msgs := conv.Messages(); len(msgs) != 2 || msgs[1].Text != FallbackReply {
		t.Fatalf("unexpected transcript %+v", msgs)
	}
}

func TestRecommendAndClear(t *testing.T) {
	fa := &fakeAssistant{reply: api.ChatResponse{Text: "Try the speaker"}}
	conv := NewConversation(fa, "inf7")
	if _, err := conv.Recommend(context.Background(), "speaker"); err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if fa.recommends != 1 || fa.lastMsg != "speaker" {
		t.Fatalf("expected recommend path, got %d %q", fa.recommends, fa.lastMsg)
	}
	if conv.CurrentVideo() != "" {
		t.Fatalf("expected no video")
	}
	conv.Clear()
	if len(conv.Messages()) != 0 {
		t.Fatalf("expected cleared transcript")
	}
}
