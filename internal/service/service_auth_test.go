package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avdeev/go-device-vault/internal/logger"
	"github.com/avdeev/go-device-vault/internal/mock"
	"github.com/avdeev/go-device-vault/models"
)

// keyWiperStub is a trivial KeyWiper; a full mock is not needed here.
type keyWiperStub struct {
	calls int
	err   error
}

func (s *keyWiperStub) Forget() error {
	s.calls++
	return s.err
}

func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	ttl time.Duration,
) (
	*authService,
	*mock.MockCacheRepository,
	*mock.MockCipherService,
	*mock.MockCredentialValidator,
	*keyWiperStub,
) {
	t.Helper()
	mockCache := mock.NewMockCacheRepository(ctrl)
	mockCipher := mock.NewMockCipherService(ctrl)
	mockValidator := mock.NewMockCredentialValidator(ctrl)
	wiper := &keyWiperStub{}

	svc := NewAuthService(mockCache, mockCipher, mockValidator, wiper, ttl, logger.Nop()).(*authService)

	return svc, mockCache, mockCipher, mockValidator, wiper
}

func cachedUserBlob(user models.User) func(blob string, target any) error {
	return func(_ string, target any) error {
		*(target.(*models.User)) = user
		return nil
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockCipher, mockValidator, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	data := models.Registration{
		Email:    "jane@example.com",
		Password: "long-enough-password",
		Name:     "Jane",
		Role:     models.RoleManager,
	}

	mockValidator.EXPECT().ValidateRegistration(data).Return(nil)
	mockCache.EXPECT().ListByKind(ctx, models.KindUser).Return(nil, nil)
	mockCipher.EXPECT().HashPassword(data.Password).Return("digest")
	mockCipher.EXPECT().EncryptData(gomock.Any()).Return("blob", nil)
	mockCache.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.CachedRecord) (models.CachedRecord, error) {
			assert.Equal(t, models.KindUser, record.Kind)
			assert.Equal(t, "blob", record.Blob)
			return record, nil
		})

	user, err := svc.Register(ctx, data)
	require.NoError(t, err)

	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, data.Email, user.Email)
	assert.Equal(t, data.Name, user.Name)
	assert.Equal(t, data.Role, user.Role)
	assert.Equal(t, "digest", user.PasswordDigest)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockValidator, _ := newTestAuthSvc(t, ctrl, time.Hour)

	data := models.Registration{Email: "not-an-email"}
	mockValidator.EXPECT().ValidateRegistration(data).Return(assert.AnError)

	_, err := svc.Register(context.Background(), data)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockCipher, mockValidator, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	data := models.Registration{
		Email:    "jane@example.com",
		Password: "long-enough-password",
		Name:     "Jane",
		Role:     models.RoleEmployee,
	}
	existing := models.User{UserID: "u-1", Email: data.Email}

	mockValidator.EXPECT().ValidateRegistration(data).Return(nil)
	mockCache.EXPECT().
		ListByKind(ctx, models.KindUser).
		Return([]models.CachedRecord{{ID: "user:u-1", Kind: models.KindUser, Blob: "blob"}}, nil)
	mockCipher.EXPECT().DecryptData("blob", gomock.Any()).DoAndReturn(cachedUserBlob(existing))
	mockValidator.EXPECT().ValidateUserEmail(gomock.Any(), data.Email).Return(true)

	_, err := svc.Register(ctx, data)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockCipher, mockValidator, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	cached := models.User{UserID: "u-1", Email: "jane@example.com", PasswordDigest: "digest"}

	mockValidator.EXPECT().ValidateCredentials(cached.Email, "password-123").Return(nil)
	mockCache.EXPECT().
		ListByKind(ctx, models.KindUser).
		Return([]models.CachedRecord{{ID: "user:u-1", Kind: models.KindUser, Blob: "blob"}}, nil)
	mockCipher.EXPECT().DecryptData("blob", gomock.Any()).DoAndReturn(cachedUserBlob(cached))
	mockValidator.EXPECT().ValidateUserEmail(gomock.Any(), cached.Email).Return(true)
	mockCipher.EXPECT().HashPassword("password-123").Return("digest")
	mockCipher.EXPECT().GenerateSecureToken().Return("token-abc", nil)

	session, err := svc.Login(ctx, cached.Email, "password-123")
	require.NoError(t, err)

	assert.Equal(t, "token-abc", session.Token)
	assert.Equal(t, cached.UserID, session.UserID)
	assert.True(t, session.ExpiresAt.After(session.CreatedAt))
}

func TestAuthService_Login_MalformedCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockValidator, _ := newTestAuthSvc(t, ctrl, time.Hour)

	mockValidator.EXPECT().ValidateCredentials("bad", "short").Return(assert.AnError)

	_, err := svc.Login(context.Background(), "bad", "short")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, _, mockValidator, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	mockValidator.EXPECT().ValidateCredentials("nobody@example.com", "password-123").Return(nil)
	mockCache.EXPECT().ListByKind(ctx, models.KindUser).Return(nil, nil)

	_, err := svc.Login(ctx, "nobody@example.com", "password-123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockCipher, mockValidator, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	cached := models.User{UserID: "u-1", Email: "jane@example.com", PasswordDigest: "digest"}

	mockValidator.EXPECT().ValidateCredentials(cached.Email, "wrong-password").Return(nil)
	mockCache.EXPECT().
		ListByKind(ctx, models.KindUser).
		Return([]models.CachedRecord{{ID: "user:u-1", Kind: models.KindUser, Blob: "blob"}}, nil)
	mockCipher.EXPECT().DecryptData("blob", gomock.Any()).DoAndReturn(cachedUserBlob(cached))
	mockValidator.EXPECT().ValidateUserEmail(gomock.Any(), cached.Email).Return(true)
	mockCipher.EXPECT().HashPassword("wrong-password").Return("other-digest")

	_, err := svc.Login(ctx, cached.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Session_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	now := time.Now()
	svc.sessions["token-abc"] = models.Session{
		Token:     "token-abc",
		UserID:    "u-1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	session, err := svc.Session(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "u-1", session.UserID)

	require.NoError(t, svc.Logout(ctx, "token-abc"))

	_, err = svc.Session(ctx, "token-abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_Session_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	svc.sessions["stale"] = models.Session{
		Token:     "stale",
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := svc.Session(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionExpired)

	// expired session is discarded on lookup
	_, err = svc.Session(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_Logout_UnknownTokenIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl, time.Hour)

	assert.NoError(t, svc.Logout(context.Background(), "never-issued"))
}

func TestAuthService_PruneExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	now := time.Now()
	svc.sessions["live"] = models.Session{Token: "live", ExpiresAt: now.Add(time.Hour)}
	svc.sessions["stale-1"] = models.Session{Token: "stale-1", ExpiresAt: now.Add(-time.Minute)}
	svc.sessions["stale-2"] = models.Session{Token: "stale-2", ExpiresAt: now.Add(-time.Hour)}

	pruned := svc.PruneExpired(ctx)
	assert.Equal(t, 2, pruned)

	_, err := svc.Session(ctx, "live")
	assert.NoError(t, err)
	_, err = svc.Session(ctx, "stale-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_WipeLocalData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, _, _, wiper := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	svc.sessions["token-abc"] = models.Session{Token: "token-abc", ExpiresAt: time.Now().Add(time.Hour)}

	mockCache.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.WipeLocalData(ctx))

	assert.Equal(t, 1, wiper.calls)
	_, err := svc.Session(ctx, "token-abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_WipeLocalData_CacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, _, _, wiper := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	mockCache.EXPECT().Clear(ctx).Return(assert.AnError)

	err := svc.WipeLocalData(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, wiper.calls)
}
