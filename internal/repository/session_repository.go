package repository

import (
	"context"
	"encoding/json"

	"sitefix/internal/model"
	"sitefix/internal/store"
)

// SessionRepository persists the authenticated user's record verbatim under a
// dedicated session key. The record has unbounded lifetime: no expiry, no
// token, no refresh. Clearing the key is the only way a session ends.
type SessionRepository interface {
	Get(ctx context.Context) *model.User
	Save(ctx context.Context, user model.User)
	Clear(ctx context.Context)
}

type sessionRepository struct {
	store *store.Store
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(st *store.Store) SessionRepository {
	return &sessionRepository{store: st}
}

// Get returns the persisted session user, or nil when anonymous. A parse
// failure or a record without an id is treated as no session and the stale
// key is deleted.
func (r *sessionRepository) Get(ctx context.Context) *model.User {
	raw := r.store.ReadRaw(ctx, sessionKey)
	if len(raw) == 0 {
		return nil
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		r.store.Delete(ctx, sessionKey)
		return nil
	}
	return &user
}

func (r *sessionRepository) Save(ctx context.Context, user model.User) {
	store.Write(ctx, r.store, sessionKey, user)
}

func (r *sessionRepository) Clear(ctx context.Context) {
	r.store.Delete(ctx, sessionKey)
}
