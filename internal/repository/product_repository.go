package repository

import (
	"context"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/store"
)

// ProductRepository defines shop catalog persistence operations.
type ProductRepository interface {
	GetAll(ctx context.Context) []model.Product
	SaveAll(ctx context.Context, products []model.Product)
	Add(ctx context.Context, product model.Product)
	Update(ctx context.Context, product model.Product) error
	Delete(ctx context.Context, id string)
}

type productRepository struct {
	store *store.Store
}

// NewProductRepository creates a new product repository.
func NewProductRepository(st *store.Store) ProductRepository {
	return &productRepository{store: st}
}

func (r *productRepository) GetAll(ctx context.Context) []model.Product {
	return store.Read(ctx, r.store, productsKey, model.SeedProducts())
}

func (r *productRepository) SaveAll(ctx context.Context, products []model.Product) {
	store.Write(ctx, r.store, productsKey, products)
}

func (r *productRepository) Add(ctx context.Context, product model.Product) {
	r.SaveAll(ctx, append(r.GetAll(ctx), product))
}

func (r *productRepository) Update(ctx context.Context, product model.Product) error {
	products := r.GetAll(ctx)
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			r.SaveAll(ctx, products)
			return nil
		}
	}
	return apperrors.ErrRecordNotFound
}

func (r *productRepository) Delete(ctx context.Context, id string) {
	products := r.GetAll(ctx)
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.SaveAll(ctx, kept)
}
