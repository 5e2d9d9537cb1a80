package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/kv"
	"sitefix/internal/model"
	"sitefix/internal/repository"
	"sitefix/internal/store"
)

func newAuthOver(backend *kv.MemoryBackend) AuthService {
	st := store.New(backend, nil)
	return NewAuthService(repository.NewUserRepository(st), repository.NewSessionRepository(st))
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		expectedError error
	}{
		{name: "seeded admin", email: "admin@sitefix.com", password: "admin", expectedError: nil},
		{name: "email match is case-insensitive", email: "Admin@SiteFix.com", password: "admin", expectedError: nil},
		{name: "wrong password", email: "admin@sitefix.com", password: "nope", expectedError: apperrors.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@sitefix.com", password: "admin", expectedError: apperrors.ErrInvalidCredentials},
		{name: "password match is exact", email: "admin@sitefix.com", password: "ADMIN", expectedError: apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			auth := newAuthOver(kv.NewMemory())

			user, err := auth.Login(ctx, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Nil(t, auth.Current(ctx))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, "u-admin", user.ID)
				assert.Equal(t, model.RoleAdmin, user.Role)
			}
		})
	}
}

func TestAuthService_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()

	auth := newAuthOver(backend)
	_, err := auth.Login(ctx, "admin@sitefix.com", "admin")
	assert.NoError(t, err)

	// a fresh service over the same backend simulates a process restart
	restarted := newAuthOver(backend)
	current := restarted.Current(ctx)
	assert.NotNil(t, current)
	assert.Equal(t, "u-admin", current.ID)
}

func TestAuthService_LogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()

	auth := newAuthOver(backend)
	_, err := auth.Login(ctx, "admin@sitefix.com", "admin")
	assert.NoError(t, err)

	auth.Logout(ctx)
	assert.Nil(t, auth.Current(ctx))

	// the next process start is anonymous too
	restarted := newAuthOver(backend)
	assert.Nil(t, restarted.Current(ctx))
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	auth := newAuthOver(kv.NewMemory())

	user, err := auth.Register(ctx, "New Client", "new@client.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)

	// registering signs the account in
	current := auth.Current(ctx)
	assert.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	// the email is now taken
	_, err = auth.Register(ctx, "Other", "NEW@CLIENT.COM", "other")
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}
