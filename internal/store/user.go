package store

import "github.com/angristan/smartroom-tui/internal/models"

// UserStore supplies the current user
type UserStore interface {
	User() models.User
}

// StaticUserStore always returns the same user
type StaticUserStore struct {
	user models.User
}

// NewStaticUserStore creates a user store for name, defaulting to "there"
func NewStaticUserStore(name string) StaticUserStore {
	if name == "" {
		name = "there"
	}
	return StaticUserStore{user: models.User{Name: name}}
}

// User returns the configured user
func (s StaticUserStore) User() models.User {
	return s.user
}
