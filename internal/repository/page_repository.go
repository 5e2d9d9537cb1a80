package repository

import (
	"context"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/store"
)

// PageRepository defines custom-page persistence operations.
type PageRepository interface {
	GetAll(ctx context.Context) []model.Page
	SaveAll(ctx context.Context, pages []model.Page)
	Add(ctx context.Context, page model.Page)
	Update(ctx context.Context, page model.Page) error
	Delete(ctx context.Context, id string)
	FindBySlug(ctx context.Context, slug string) (*model.Page, error)
}

type pageRepository struct {
	store *store.Store
}

// NewPageRepository creates a new page repository.
func NewPageRepository(st *store.Store) PageRepository {
	return &pageRepository{store: st}
}

func (r *pageRepository) GetAll(ctx context.Context) []model.Page {
	return store.Read(ctx, r.store, pagesKey, model.SeedPages())
}

func (r *pageRepository) SaveAll(ctx context.Context, pages []model.Page) {
	store.Write(ctx, r.store, pagesKey, pages)
}

func (r *pageRepository) Add(ctx context.Context, page model.Page) {
	r.SaveAll(ctx, append(r.GetAll(ctx), page))
}

func (r *pageRepository) Update(ctx context.Context, page model.Page) error {
	pages := r.GetAll(ctx)
	for i := range pages {
		if pages[i].ID == page.ID {
			pages[i] = page
			r.SaveAll(ctx, pages)
			return nil
		}
	}
	return apperrors.ErrRecordNotFound
}

func (r *pageRepository) Delete(ctx context.Context, id string) {
	pages := r.GetAll(ctx)
	kept := pages[:0]
	for _, p := range pages {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.SaveAll(ctx, kept)
}

// FindBySlug returns the first page with the slug; the published check is the
// caller's concern. Slug collisions are not prevented at write time.
func (r *pageRepository) FindBySlug(ctx context.Context, slug string) (*model.Page, error) {
	for _, p := range r.GetAll(ctx) {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, apperrors.ErrRecordNotFound
}
