package identity

import (
	"time"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
)

// User is a registered account as the dev backend stores it.
type User struct {
	ID           string
	Email        string
	Name         string
	UserType     account.UserType
	PasswordHash []byte
	CreatedAt    time.Time
}

// Profile is the public view returned to clients.
func (u User) Profile() account.User {
	return account.User{ID: u.ID, Email: u.Email, Name: u.Name, UserType: u.UserType}
}

// Signup is the /register payload after decoding.
type Signup struct {
	Name     string
	Email    string
	Password string
	UserType string
}
