package account

import (
	"errors"
	"fmt"
	"strings"
)

// UserType is the role a user signs up with. Navigation branches on it.
type UserType string

const (
	Influencer UserType = "influencer"
	Customer   UserType = "customer"
)

const minPasswordLength = 8

var (
	ErrMissingLogin     = errors.New("Please enter both email and password")
	ErrMissingName      = errors.New("Please enter your name")
	ErrMissingEmail     = errors.New("Please enter your email")
	ErrMissingPassword  = errors.New("Please enter a password")
	ErrPasswordTooShort = fmt.Errorf("Password must be at least %d characters", minPasswordLength)
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrUnknownUserType  = errors.New("unknown user type")
)

// User is the profile issued by the backend on login. It is replaced wholesale
// on re-login and never edited locally.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	UserType UserType `json:"userType"`
}

// IsInfluencer reports whether the user signed up as an influencer.
func (u User) IsInfluencer() bool {
	return u.UserType == Influencer
}

// ParseUserType accepts "influencer" or "customer" in any case.
func ParseUserType(s string) (UserType, error) {
	switch UserType(strings.ToLower(strings.TrimSpace(s))) {
	case Influencer:
		return Influencer, nil
	case Customer:
		return Customer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUserType, s)
	}
}

// Credentials request structure.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks the login form.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Password) == "" {
		return ErrMissingLogin
	}
	return nil
}

// Registration is the signup form.
type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	UserType        UserType
}

// Validate applies the signup rules in form order and returns the first failure.
// An empty user type defaults to customer.
func (r *Registration) Validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return ErrMissingName
	case strings.TrimSpace(r.Email) == "":
		return ErrMissingEmail
	case strings.TrimSpace(r.Password) == "":
		return ErrMissingPassword
	case len(r.Password) < minPasswordLength:
		return ErrPasswordTooShort
	case r.Password != r.ConfirmPassword:
		return ErrPasswordMismatch
	}
	if r.UserType == "" {
		r.UserType = Customer
	}
	if _, err := ParseUserType(string(r.UserType)); err != nil {
		return err
	}
	return nil
}

// AuthResult is what the backend returns for a successful login.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
