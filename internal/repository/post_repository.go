package repository

import (
	"context"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/store"
)

// PostRepository defines blog persistence operations.
type PostRepository interface {
	GetAll(ctx context.Context) []model.Post
	SaveAll(ctx context.Context, posts []model.Post)
	Add(ctx context.Context, post model.Post)
	Update(ctx context.Context, post model.Post) error
	Delete(ctx context.Context, id string)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	IncrementViews(ctx context.Context, id string) error
}

type postRepository struct {
	store *store.Store
}

// NewPostRepository creates a new post repository.
func NewPostRepository(st *store.Store) PostRepository {
	return &postRepository{store: st}
}

func (r *postRepository) GetAll(ctx context.Context) []model.Post {
	return store.Read(ctx, r.store, postsKey, model.SeedPosts())
}

func (r *postRepository) SaveAll(ctx context.Context, posts []model.Post) {
	store.Write(ctx, r.store, postsKey, posts)
}

func (r *postRepository) Add(ctx context.Context, post model.Post) {
	r.SaveAll(ctx, append(r.GetAll(ctx), post))
}

func (r *postRepository) Update(ctx context.Context, post model.Post) error {
	posts := r.GetAll(ctx)
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			r.SaveAll(ctx, posts)
			return nil
		}
	}
	return apperrors.ErrRecordNotFound
}

func (r *postRepository) Delete(ctx context.Context, id string) {
	posts := r.GetAll(ctx)
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.SaveAll(ctx, kept)
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	for _, p := range r.GetAll(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperrors.ErrRecordNotFound
}

// IncrementViews bumps the view counter on the matching post.
func (r *postRepository) IncrementViews(ctx context.Context, id string) error {
	posts := r.GetAll(ctx)
	for i := range posts {
		if posts[i].ID == id {
			posts[i].Views++
			r.SaveAll(ctx, posts)
			return nil
		}
	}
	return apperrors.ErrRecordNotFound
}
