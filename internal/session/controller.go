package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
	"github.com/avatar-commerce/avatarcommerce/internal/credential"
)

// Authenticator is the backend half of the session flow.
type Authenticator interface {
	Login(ctx context.Context, creds account.Credentials) (account.AuthResult, error)
	Register(ctx context.Context, reg account.Registration) (account.User, error)
}

// Controller owns the session. All transitions, including a token rejected by
// the backend, go through it, and it is the only writer of the credential record.
type Controller struct {
	auth   Authenticator
	store  credential.Store
	logger *slog.Logger

	// mu guards state and serializes credential writes so storage always
	// matches the last transition.
	mu    sync.Mutex
	state State
	// epoch advances on every logout or invalidation. A login started in an
	// earlier epoch is discarded when it resolves.
	epoch   uint64
	nextSub int
	subs    map[int]func(State)
}

// NewController builds an unauthenticated controller. Call Restore once at start.
func NewController(auth Authenticator, store credential.Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		auth:   auth,
		store:  store,
		logger: logger,
		state:  unauthenticated(),
		subs:   make(map[int]func(State)),
	}
}

// State returns the current session snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Token implements gateway.TokenSource.
func (c *Controller) Token(context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.IsAuthenticated() {
		return "", nil
	}
	return c.state.token, nil
}

// Subscribe registers fn for every transition and returns a func that removes it.
// fn runs with the controller locked and must not call back into it.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Restore rebuilds the session from the credential record without contacting
// the backend. Read failures leave the session unauthenticated and are only logged.
func (c *Controller) Restore(ctx context.Context) State {
	rec, err := credential.LoadRecord(ctx, c.store)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err == nil:
		c.setLocked(authenticated(rec.User, rec.Token))
		c.logger.Info("session restored", "user_id", rec.User.ID, "user_type", rec.User.UserType)
	case errors.Is(err, credential.ErrNotFound):
		c.setLocked(unauthenticated())
	default:
		c.logger.Warn("restore session", "error", err)
		c.setLocked(unauthenticated())
	}
	return c.state
}

// Login authenticates against the backend and persists the credential record.
// A rejected or failed login leaves storage untouched.
func (c *Controller) Login(ctx context.Context, creds account.Credentials) (State, error) {
	if err := creds.Validate(); err != nil {
		return c.State(), invalidInput(err)
	}

	c.mu.Lock()
	epoch := c.epoch
	c.setLocked(authenticating())
	c.mu.Unlock()

	res, err := c.auth.Login(ctx, creds)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		c.logger.Info("discarding login resolved after logout", "email", creds.Email)
		return c.state, ErrStaleLogin
	}
	if err != nil {
		authErr := classify(err, msgLoginFailed)
		c.logger.Warn("login failed", "email", creds.Email, "error", err)
		c.setLocked(failed(authErr.Message))
		return c.state, authErr
	}
	if res.Token == "" || res.User.ID == "" {
		authErr := &AuthError{Kind: ErrAuthRejected, Message: msgLoginFailed}
		c.logger.Warn("login response missing token or user", "email", creds.Email)
		c.setLocked(failed(authErr.Message))
		return c.state, authErr
	}

	c.setLocked(authenticated(res.User, res.Token))
	if err := credential.SaveRecord(context.WithoutCancel(ctx), c.store, credential.Record{Token: res.Token, User: res.User}); err != nil {
		c.logger.Error("persist credentials", "user_id", res.User.ID, "error", err)
	}
	c.logger.Info("login succeeded", "user_id", res.User.ID, "user_type", res.User.UserType)
	return c.state, nil
}

// Signup registers a new account. It does not sign the user in.
func (c *Controller) Signup(ctx context.Context, reg account.Registration) (account.User, error) {
	if err := reg.Validate(); err != nil {
		return account.User{}, invalidInput(err)
	}
	user, err := c.auth.Register(ctx, reg)
	if err != nil {
		c.logger.Warn("signup failed", "email", reg.Email, "error", err)
		return account.User{}, classify(err, msgRegisterFailed)
	}
	c.logger.Info("signup succeeded", "user_id", user.ID, "user_type", user.UserType)
	return user, nil
}

// Logout clears the session and deletes the credential record. It never
// contacts the backend and is idempotent.
func (c *Controller) Logout(ctx context.Context) State {
	return c.invalidate(ctx, "logout")
}

// HandleUnauthorized is the gateway's 401 hook. token is the bearer the
// rejected request carried. It performs the same transition as Logout, but
// only while that token is still the current one; a late 401 for a token
// replaced by a newer login is ignored.
func (c *Controller) HandleUnauthorized(ctx context.Context, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" || c.state.token != token {
		c.logger.Info("ignoring unauthorized response for a replaced token")
		return
	}
	c.invalidateLocked(ctx, "unauthorized")
}

// ClearError moves a Failed session back to Unauthenticated.
func (c *Controller) ClearError() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.status == StatusFailed {
		c.setLocked(unauthenticated())
	}
	return c.state
}

func (c *Controller) invalidate(ctx context.Context, cause string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidateLocked(ctx, cause)
}

func (c *Controller) invalidateLocked(ctx context.Context, cause string) State {
	c.epoch++
	if err := credential.ClearRecord(context.WithoutCancel(ctx), c.store); err != nil {
		c.logger.Warn("clear credentials", "cause", cause, "error", err)
	}
	c.setLocked(unauthenticated())
	c.logger.Info("session cleared", "cause", cause)
	return c.state
}

func (c *Controller) setLocked(s State) {
	c.state = s
	for _, fn := range c.subs {
		fn(s)
	}
}
