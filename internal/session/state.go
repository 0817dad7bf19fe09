package session

import "github.com/avatar-commerce/avatarcommerce/internal/account"

// Status tags the variant held by a State.
type Status int

const (
	StatusUnauthenticated Status = iota
	StatusAuthenticating
	StatusAuthenticated
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is one of Unauthenticated, Authenticating, Authenticated{user, token}
// or Failed{reason}. Fields are only set through the constructors below, so a
// state can never be loading and authenticated at once, and user/token are
// present exactly when authenticated.
type State struct {
	status Status
	user   account.User
	token  string
	reason string
}

func unauthenticated() State { return State{status: StatusUnauthenticated} }

func authenticating() State { return State{status: StatusAuthenticating} }

func authenticated(user account.User, token string) State {
	return State{status: StatusAuthenticated, user: user, token: token}
}

func failed(reason string) State { return State{status: StatusFailed, reason: reason} }

func (s State) Status() Status { return s.status }

// User returns the signed-in user; ok is false unless authenticated.
func (s State) User() (account.User, bool) {
	return s.user, s.IsAuthenticated()
}

// Token returns the bearer token, empty unless authenticated.
func (s State) Token() string { return s.token }

// Reason is the human-readable failure message of a Failed state.
func (s State) Reason() string { return s.reason }

// IsAuthenticated holds iff both user and token are present.
func (s State) IsAuthenticated() bool {
	return s.status == StatusAuthenticated && s.user.ID != "" && s.token != ""
}

func (s State) IsLoading() bool { return s.status == StatusAuthenticating }
