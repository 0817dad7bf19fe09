package session

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/avatar-commerce/avatarcommerce/internal/gateway"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&AuthError{Kind: ErrAuthRejected, Message: "Invalid email or password"}, "Invalid email or password"},
		{&gateway.NetworkError{Method: http.MethodGet, Path: "/x", Err: context.DeadlineExceeded}, msgNetwork},
		{&gateway.StatusError{Method: http.MethodGet, Path: "/x", Status: http.StatusUnauthorized, Message: "token expired"}, MsgSessionExpired},
		{&gateway.StatusError{Method: http.MethodPost, Path: "/affiliate", Status: http.StatusConflict, Message: "already registered"}, "already registered"},
		{errors.New("boom"), "boom"},
	}
	for _, tc := range cases {
		if got := UserMessage(tc.err); got != tc.want {
			t.Fatalf("UserMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
