// Package api wraps the AvatarCommerce backend endpoints on top of the gateway.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/avatar-commerce/avatarcommerce/internal/gateway"
)

// Transport is the subset of the gateway used by Client.
type Transport interface {
	GetJSON(ctx context.Context, path string, out any) error
	PostJSON(ctx context.Context, path string, in, out any) error
	PostMultipart(ctx context.Context, path string, fields map[string]string, files []gateway.FilePart, header http.Header, out any) error
}

// Client exposes typed backend calls.
type Client struct {
	t Transport
}

// New builds a Client over t.
func New(t Transport) *Client {
	return &Client{t: t}
}

// AvatarUpload is the image submitted to create-avatar.
type AvatarUpload struct {
	InfluencerID string
	FileName     string
	MediaType    string
	Content      io.Reader
}
