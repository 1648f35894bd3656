// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avdeev/go-device-vault/internal/crypto"
	"github.com/avdeev/go-device-vault/internal/logger"
	"github.com/avdeev/go-device-vault/internal/store"
	"github.com/avdeev/go-device-vault/internal/validators"
	"github.com/avdeev/go-device-vault/models"
)

// KeyWiper discards the per-installation device key. Implemented by the
// device key manager; pulled in here only for the local-data wipe flow.
type KeyWiper interface {
	Forget() error
}

// userRecordID is the cache record id for the account with the given user id.
func userRecordID(userID string) string {
	return "user:" + userID
}

type authService struct {
	cache     store.CacheRepository
	cipher    crypto.CipherService
	validator validators.CredentialValidator
	keys      KeyWiper
	log       *logger.Logger

	sessionTTL time.Duration

	mu       sync.Mutex
	sessions map[string]models.Session
}

// NewAuthService constructs an [AuthService] over the encrypted cache.
// sessionTTL bounds the lifetime of every issued session.
func NewAuthService(cache store.CacheRepository, cipher crypto.CipherService, validator validators.CredentialValidator, keys KeyWiper, sessionTTL time.Duration, log *logger.Logger) AuthService {
	return &authService{
		cache:      cache,
		cipher:     cipher,
		validator:  validator,
		keys:       keys,
		log:        log,
		sessionTTL: sessionTTL,
		sessions:   make(map[string]models.Session),
	}
}

func (a *authService) Register(ctx context.Context, data models.Registration) (models.User, error) {
	if err := a.validator.ValidateRegistration(data); err != nil {
		return models.User{}, fmt.Errorf("validate registration: %w", err)
	}

	existing, err := a.cachedUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	for i := range existing {
		if a.validator.ValidateUserEmail(&existing[i], data.Email) {
			return models.User{}, ErrUserAlreadyExists
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.User{}, fmt.Errorf("generate user id: %w", err)
	}

	user := models.User{
		UserID:         id.String(),
		Email:          data.Email,
		Name:           data.Name,
		Role:           data.Role,
		PasswordDigest: a.cipher.HashPassword(data.Password),
		CreatedAt:      time.Now(),
	}

	blob, err := a.cipher.EncryptData(user)
	if err != nil {
		return models.User{}, fmt.Errorf("encrypt user: %w", err)
	}

	if _, err = a.cache.Save(ctx, models.CachedRecord{
		ID:   userRecordID(user.UserID),
		Kind: models.KindUser,
		Blob: blob,
	}); err != nil {
		return models.User{}, fmt.Errorf("cache user: %w", err)
	}

	a.log.Info().Str("user_id", user.UserID).Msg("user registered")
	return user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := a.validator.ValidateCredentials(email, password); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	users, err := a.cachedUsers(ctx)
	if err != nil {
		return models.Session{}, err
	}

	var found *models.User
	for i := range users {
		if a.validator.ValidateUserEmail(&users[i], email) {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return models.Session{}, ErrInvalidCredentials
	}

	digest := a.cipher.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(found.PasswordDigest)) != 1 {
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := a.cipher.GenerateSecureToken()
	if err != nil {
		return models.Session{}, fmt.Errorf("issue session token: %w", err)
	}

	now := time.Now()
	session := models.Session{
		Token:     token,
		UserID:    found.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}

	a.mu.Lock()
	a.sessions[token] = session
	a.mu.Unlock()

	a.log.Info().Str("user_id", found.UserID).Msg("user logged in")
	return session, nil
}

func (a *authService) Logout(_ context.Context, token string) error {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
	return nil
}

func (a *authService) Session(_ context.Context, token string) (models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	session, ok := a.sessions[token]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		delete(a.sessions, token)
		return models.Session{}, ErrSessionExpired
	}
	return session, nil
}

func (a *authService) PruneExpired(_ context.Context) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	pruned := 0
	for token, session := range a.sessions {
		if session.Expired(now) {
			delete(a.sessions, token)
			pruned++
		}
	}
	if pruned > 0 {
		a.log.Debug().Int("count", pruned).Msg("expired sessions pruned")
	}
	return pruned
}

func (a *authService) WipeLocalData(ctx context.Context) error {
	if err := a.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	if err := a.keys.Forget(); err != nil {
		return fmt.Errorf("forget device key: %w", err)
	}

	a.mu.Lock()
	a.sessions = make(map[string]models.Session)
	a.mu.Unlock()

	a.log.Info().Msg("local data wiped")
	return nil
}

// cachedUsers loads and decrypts every cached account. A blob that fails
// to decrypt aborts the whole operation: it means the device key changed
// and the cache is unusable until wiped.
func (a *authService) cachedUsers(ctx context.Context) ([]models.User, error) {
	records, err := a.cache.ListByKind(ctx, models.KindUser)
	if err != nil {
		return nil, fmt.Errorf("list cached users: %w", err)
	}

	users := make([]models.User, 0, len(records))
	for _, record := range records {
		var user models.User
		if err := a.cipher.DecryptData(record.Blob, &user); err != nil {
			return nil, fmt.Errorf("decrypt cached user %s: %w", record.ID, err)
		}
		users = append(users, user)
	}
	return users, nil
}
