package repository

import (
	"context"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/store"
)

// OrderRepository defines order persistence operations. The collection is
// kept newest-first; orders are never removed.
type OrderRepository interface {
	GetAll(ctx context.Context) []model.Order
	SaveAll(ctx context.Context, orders []model.Order)
	Add(ctx context.Context, order model.Order)
	Update(ctx context.Context, order model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByUser(ctx context.Context, userID string) []model.Order
}

type orderRepository struct {
	store *store.Store
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(st *store.Store) OrderRepository {
	return &orderRepository{store: st}
}

func (r *orderRepository) GetAll(ctx context.Context) []model.Order {
	return store.Read(ctx, r.store, ordersKey, model.SeedOrders())
}

func (r *orderRepository) SaveAll(ctx context.Context, orders []model.Order) {
	store.Write(ctx, r.store, ordersKey, orders)
}

// Add prepends the order so the collection stays newest-first.
func (r *orderRepository) Add(ctx context.Context, order model.Order) {
	r.SaveAll(ctx, append([]model.Order{order}, r.GetAll(ctx)...))
}

func (r *orderRepository) Update(ctx context.Context, order model.Order) error {
	orders := r.GetAll(ctx)
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order
			r.SaveAll(ctx, orders)
			return nil
		}
	}
	return apperrors.ErrOrderNotFound
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	for _, o := range r.GetAll(ctx) {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, apperrors.ErrOrderNotFound
}

func (r *orderRepository) FindByUser(ctx context.Context, userID string) []model.Order {
	var out []model.Order
	for _, o := range r.GetAll(ctx) {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
