package identity

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/utils"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Registry is the identity collaborator: it owns user accounts and hands out
// the opaque user IDs the auction core references. The core never reaches
// back into it.
type Registry struct {
	mu         sync.RWMutex
	byID       map[string]models.User
	byUsername map[string]string // key: username -> value: userID
	byEmail    map[string]string // key: email -> value: userID
}

// NewRegistry creates an empty user registry
func NewRegistry() *Registry {
	return &Registry{
		byID:       make(map[string]models.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

// Register creates a new user account with a bcrypt-hashed password
func (r *Registry) Register(fullName, email, username, password string) (models.User, error) {
	if fullName == "" || email == "" || username == "" || password == "" {
		return models.User{}, fmt.Errorf("identity: %w - missing registration fields", auctionerrors.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("identity: failed to hash password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[username]; taken {
		return models.User{}, fmt.Errorf("identity: %w", auctionerrors.ErrDuplicateUser)
	}
	if _, taken := r.byEmail[email]; taken {
		return models.User{}, fmt.Errorf("identity: %w", auctionerrors.ErrDuplicateUser)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		FullName:     fullName,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	r.byID[user.UserID] = user
	r.byUsername[username] = user.UserID
	r.byEmail[email] = user.UserID
	return user, nil
}

// Authenticate verifies a password against the account matching the given
// username or email
func (r *Registry) Authenticate(usernameOrEmail, password string) (models.User, error) {
	if usernameOrEmail == "" || password == "" {
		return models.User{}, fmt.Errorf("identity: %w - missing credentials", auctionerrors.ErrInvalidInput)
	}

	r.mu.RLock()
	userID, ok := r.byUsername[usernameOrEmail]
	if !ok {
		userID, ok = r.byEmail[usernameOrEmail]
	}
	user := r.byID[userID]
	r.mu.RUnlock()

	if !ok {
		return models.User{}, fmt.Errorf("identity: %w", auctionerrors.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("identity: %w", auctionerrors.ErrInvalidCredentials)
	}
	return user, nil
}

// Lookup returns a user by ID
func (r *Registry) Lookup(userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return models.User{}, fmt.Errorf("identity: user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}
