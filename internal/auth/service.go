package auth

import (
	"context"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
	"github.com/avatar-commerce/avatarcommerce/internal/identity"
)

// Service logs users in and issues access tokens.
type Service struct {
	ids    *identity.Service
	tokens *Tokens
}

func NewService(ids *identity.Service, tokens *Tokens) *Service {
	return &Service{ids: ids, tokens: tokens}
}

// Login validates credentials (by delegating to identity.Service) and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (account.AuthResult, error) {
	user, err := s.ids.Authenticate(ctx, email, password)
	if err != nil {
		return account.AuthResult{}, err
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return account.AuthResult{}, err
	}
	return account.AuthResult{Token: token, User: user.Profile()}, nil
}
