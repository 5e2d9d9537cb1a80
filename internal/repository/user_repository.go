package repository

import (
	"context"
	"strings"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/store"
)

// UserRepository defines user persistence operations. Emails are unique
// case-insensitively; users are never deleted in-app.
type UserRepository interface {
	GetAll(ctx context.Context) []model.User
	SaveAll(ctx context.Context, users []model.User)
	Register(ctx context.Context, user model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user model.User) error
}

type userRepository struct {
	store *store.Store
}

// NewUserRepository creates a new user repository.
func NewUserRepository(st *store.Store) UserRepository {
	return &userRepository{store: st}
}

func (r *userRepository) GetAll(ctx context.Context) []model.User {
	return store.Read(ctx, r.store, usersKey, model.SeedUsers())
}

func (r *userRepository) SaveAll(ctx context.Context, users []model.User) {
	store.Write(ctx, r.store, usersKey, users)
}

// Register appends the user unless the email is already taken.
func (r *userRepository) Register(ctx context.Context, user model.User) error {
	users := r.GetAll(ctx)
	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.ErrUserAlreadyExists
		}
	}
	r.SaveAll(ctx, append(users, user))
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.GetAll(ctx) {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Update replaces the record with a matching id, then saves the whole collection.
func (r *userRepository) Update(ctx context.Context, user model.User) error {
	users := r.GetAll(ctx)
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			r.SaveAll(ctx, users)
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}
