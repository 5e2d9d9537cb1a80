package repository

import (
	"context"

	"sitefix/internal/model"
	"sitefix/internal/store"
)

// ConfigRepository defines singleton site configuration persistence. Reads
// merge the stored record over the compiled-in defaults so newly introduced
// fields are backfilled; writes replace the whole record.
type ConfigRepository interface {
	Get(ctx context.Context) model.SiteConfig
	Save(ctx context.Context, cfg model.SiteConfig)
}

type configRepository struct {
	store *store.Store
}

// NewConfigRepository creates a new site config repository.
func NewConfigRepository(st *store.Store) ConfigRepository {
	return &configRepository{store: st}
}

func (r *configRepository) Get(ctx context.Context) model.SiteConfig {
	return store.Read(ctx, r.store, configKey, model.SeedSiteConfig())
}

func (r *configRepository) Save(ctx context.Context, cfg model.SiteConfig) {
	store.Write(ctx, r.store, configKey, cfg)
}
