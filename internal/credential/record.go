package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
)

// Record is the durable mirror of an authenticated session.
type Record struct {
	Token string
	User  account.User
}

// SaveRecord writes the token and user profile. Influencers also get the
// influencer_id convenience entry; for anyone else a stale entry is removed.
func SaveRecord(ctx context.Context, s Store, rec Record) error {
	if rec.Token == "" || rec.User.ID == "" {
		return fmt.Errorf("save record: token and user id are required")
	}
	userJSON, err := json.Marshal(rec.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.Set(ctx, KeyAuthToken, rec.Token); err != nil {
		return err
	}
	if err := s.Set(ctx, KeyUserData, string(userJSON)); err != nil {
		return err
	}
	if rec.User.IsInfluencer() {
		return s.Set(ctx, KeyInfluencerID, rec.User.ID)
	}
	return s.Remove(ctx, KeyInfluencerID)
}

// LoadRecord reads a complete record. A missing token or user yields
// ErrNotFound; undecodable user data yields ErrCorrupt.
func LoadRecord(ctx context.Context, s Store) (Record, error) {
	token, err := s.Get(ctx, KeyAuthToken)
	if err != nil {
		return Record{}, err
	}
	raw, err := s.Get(ctx, KeyUserData)
	if err != nil {
		return Record{}, err
	}
	if token == "" {
		return Record{}, ErrNotFound
	}
	var user account.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return Record{}, fmt.Errorf("%w: user_data: %v", ErrCorrupt, err)
	}
	if user.ID == "" {
		return Record{}, fmt.Errorf("%w: user_data has no id", ErrCorrupt)
	}
	return Record{Token: token, User: user}, nil
}

// ClearRecord removes every credential key, attempting all of them even when
// one fails.
func ClearRecord(ctx context.Context, s Store) error {
	var errs []error
	for _, key := range []string{KeyAuthToken, KeyUserData, KeyInfluencerID} {
		if err := s.Remove(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// InfluencerID returns the stored influencer id, or ErrNotFound.
func InfluencerID(ctx context.Context, s Store) (string, error) {
	id, err := s.Get(ctx, KeyInfluencerID)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrNotFound
	}
	return id, nil
}
