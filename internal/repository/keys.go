// Package repository binds each persisted collection to a fixed store key and
// its seed value. Saves are whole-collection replacements and, like the store
// beneath them, best-effort: a failed write is logged by the adapter and the
// caller proceeds with its in-memory copy.
package repository

import (
	"context"

	"sitefix/internal/model"
	"sitefix/internal/store"
)

const (
	usersKey           = "sf_users"
	ordersKey          = "sf_orders"
	productsKey        = "sf_products"
	postsKey           = "sf_posts"
	pagesKey           = "sf_pages"
	paymentAccountsKey = "sf_payment_accounts"
	configKey          = "sf_config"
	teamKey            = "sf_team"
	sessionKey         = "sf_session_user"
)

// SeedAll overwrites every collection with its seed value. Used by cmd/seed
// and the admin reset endpoint.
func SeedAll(ctx context.Context, st *store.Store) {
	store.Write(ctx, st, usersKey, model.SeedUsers())
	store.Write(ctx, st, ordersKey, model.SeedOrders())
	store.Write(ctx, st, productsKey, model.SeedProducts())
	store.Write(ctx, st, postsKey, model.SeedPosts())
	store.Write(ctx, st, pagesKey, model.SeedPages())
	store.Write(ctx, st, paymentAccountsKey, model.SeedPaymentAccounts())
	store.Write(ctx, st, configKey, model.SeedSiteConfig())
	store.Write(ctx, st, teamKey, model.SeedTeam())
	st.Delete(ctx, sessionKey)
}
