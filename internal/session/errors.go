package session

import (
	"errors"

	"github.com/avatar-commerce/avatarcommerce/internal/gateway"
)

const (
	msgNetwork        = "Unable to reach the server. Please check your connection and try again."
	msgLoginFailed    = "Login failed. Please try again."
	msgRegisterFailed = "Registration failed. Please try again."

	// MsgSessionExpired is shown when a request is refused because the token
	// is no longer valid.
	MsgSessionExpired = "Your session has expired. Please log in again."
)

var (
	// ErrNetwork classifies failures to reach the backend.
	ErrNetwork = errors.New("network error")
	// ErrAuthRejected classifies a backend refusal (bad credentials, duplicate account).
	ErrAuthRejected = errors.New("authentication rejected")
	// ErrInvalidInput classifies form validation failures caught before any request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStaleLogin is returned when a login resolves after a logout already
	// cleared the session. The result is discarded.
	ErrStaleLogin = errors.New("login superseded by logout")
)

// AuthError is returned by Login and Signup. Message is safe to show to the
// user; Kind is one of ErrNetwork, ErrAuthRejected or ErrInvalidInput.
type AuthError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func classify(err error, fallback string) *AuthError {
	var netErr *gateway.NetworkError
	if errors.As(err, &netErr) {
		return &AuthError{Kind: ErrNetwork, Message: msgNetwork, Err: err}
	}
	msg := fallback
	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		msg = statusErr.Message
	}
	return &AuthError{Kind: ErrAuthRejected, Message: msg, Err: err}
}

func invalidInput(err error) *AuthError {
	return &AuthError{Kind: ErrInvalidInput, Message: err.Error(), Err: err}
}

// UserMessage renders err for display. Authentication failures keep their own
// message and a 401 on an authenticated request becomes MsgSessionExpired.
func UserMessage(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var netErr *gateway.NetworkError
	if errors.As(err, &netErr) {
		return msgNetwork
	}
	if errors.Is(err, gateway.ErrUnauthorized) {
		return MsgSessionExpired
	}
	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return err.Error()
}
