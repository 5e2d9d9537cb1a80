package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/kv"
	"sitefix/internal/model"
	"sitefix/internal/store"
)

func newTestStore() *store.Store {
	return store.New(kv.NewMemory(), nil)
}

func TestUserRepository_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		expectedError error
	}{
		{name: "new email", email: "new@sitefix.com", expectedError: nil},
		{name: "duplicate email", email: "admin@sitefix.com", expectedError: apperrors.ErrUserAlreadyExists},
		{name: "duplicate differing in case", email: "ADMIN@SITEFIX.COM", expectedError: apperrors.ErrUserAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewUserRepository(newTestStore())

			err := repo.Register(ctx, model.User{ID: "u-x", Email: tt.email, Role: model.RoleUser})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Len(t, repo.GetAll(ctx), len(model.SeedUsers()))
			} else {
				assert.NoError(t, err)
				assert.Len(t, repo.GetAll(ctx), len(model.SeedUsers())+1)
			}
		})
	}
}

func TestUserRepository_SaveAllRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore())

	users := []model.User{{ID: "u-1", Name: "One", Email: "one@x.com", Role: model.RoleUser, Password: "pw"}}
	repo.SaveAll(ctx, users)

	assert.Equal(t, users, repo.GetAll(ctx))
}

func TestOrderRepository_AddPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore())

	repo.Add(ctx, model.Order{ID: "SF-OLD", Status: model.OrderStatusPendingVerification})
	repo.Add(ctx, model.Order{ID: "SF-NEW", Status: model.OrderStatusPendingVerification})

	orders := repo.GetAll(ctx)
	assert.Len(t, orders, 2)
	assert.Equal(t, "SF-NEW", orders[0].ID)
	assert.Equal(t, "SF-OLD", orders[1].ID)
}

func TestOrderRepository_UpdateReplacesByID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore())

	repo.Add(ctx, model.Order{ID: "SF-1", Status: model.OrderStatusPendingVerification})

	updated := model.Order{ID: "SF-1", Status: model.OrderStatusActive}
	assert.NoError(t, repo.Update(ctx, updated))

	got, err := repo.FindByID(ctx, "SF-1")
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusActive, got.Status)

	assert.ErrorIs(t, repo.Update(ctx, model.Order{ID: "SF-missing"}), apperrors.ErrOrderNotFound)
}

func TestConfigRepository_MergesStoredOverDefaults(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	// stored override from an older build with only two fields
	_ = backend.Set(ctx, "sf_config", []byte(`{"siteName":"Custom Name","aiApiKey":"k-123"}`))
	repo := NewConfigRepository(store.New(backend, nil))

	cfg := repo.Get(ctx)
	def := model.SeedSiteConfig()

	assert.Equal(t, "Custom Name", cfg.SiteName)
	assert.Equal(t, "k-123", cfg.AIAPIKey)
	assert.Equal(t, def.ContactEmail, cfg.ContactEmail)
	assert.Equal(t, def.SEOTitle, cfg.SEOTitle)
}

func TestSessionRepository_StaleRecordIsCleared(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "unparseable", stored: "{broken"},
		{name: "missing id", stored: `{"name":"ghost"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := kv.NewMemory()
			_ = backend.Set(ctx, "sf_session_user", []byte(tt.stored))
			st := store.New(backend, nil)
			repo := NewSessionRepository(st)

			assert.Nil(t, repo.Get(ctx))

			// the stale key was deleted, not left behind
			raw, _ := backend.Get(ctx, "sf_session_user")
			assert.Nil(t, raw)
		})
	}
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestStore())

	user := model.User{ID: "u-1", Name: "One", Email: "one@x.com", Role: model.RoleAdmin, Password: "pw"}
	repo.Save(ctx, user)

	got := repo.Get(ctx)
	assert.NotNil(t, got)
	assert.Equal(t, user, *got)

	repo.Clear(ctx)
	assert.Nil(t, repo.Get(ctx))
}

func TestCorruptedCollectionFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	_ = backend.Set(ctx, "sf_products", []byte(`{"not":"a sequence"}`))
	repo := NewProductRepository(store.New(backend, nil))

	assert.Equal(t, model.SeedProducts(), repo.GetAll(ctx))
}
