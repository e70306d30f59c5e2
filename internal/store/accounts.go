package store

import (
	"errors"
	"sync"

	"healthassist/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrProfileNotFound    = errors.New("failed to find profile")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	// AccountStore holds registered profiles for the life of the
	// process. Profiles are never updated or deleted once created.
	AccountStore interface {
		Create(profile models.UserProfile) error
		Get(username string) (*models.UserProfile, error)
		VerifyCredentials(username, password string) (*models.UserProfile, error)
	}

	inMemoryAccounts struct {
		mu       sync.Mutex
		profiles map[string]models.UserProfile
	}
)

func (accounts *inMemoryAccounts) Create(profile models.UserProfile) error {
	accounts.mu.Lock()
	defer accounts.mu.Unlock()

	if _, exists := accounts.profiles[profile.Username]; exists {
		return ErrDuplicateUsername
	}
	accounts.profiles[profile.Username] = profile
	return nil
}

func (accounts *inMemoryAccounts) Get(username string) (*models.UserProfile, error) {
	accounts.mu.Lock()
	defer accounts.mu.Unlock()

	profile, exists := accounts.profiles[username]
	if !exists {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

// VerifyCredentials does not distinguish an unknown username from a
// wrong password.
func (accounts *inMemoryAccounts) VerifyCredentials(username, password string) (*models.UserProfile, error) {
	accounts.mu.Lock()
	defer accounts.mu.Unlock()

	profile, exists := accounts.profiles[username]
	if !exists {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &profile, nil
}

func NewAccountStore() AccountStore {
	return &inMemoryAccounts{profiles: make(map[string]models.UserProfile)}
}
