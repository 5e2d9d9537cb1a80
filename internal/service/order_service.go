package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// CheckoutInput carries the fields the checkout screen collects.
type CheckoutInput struct {
	Service        string
	Plan           string
	Amount         decimal.Decimal
	PaymentMethod  string
	TransactionID  string
	ProofOfPayment string
}

// OrderService handles checkout and manual payment verification. Verification
// transitions touch only the status field; completed and cancelled are terminal.
type OrderService interface {
	Checkout(ctx context.Context, userID string, in CheckoutInput) (*model.Order, error)
	Approve(ctx context.Context, id string) (*model.Order, error)
	Reject(ctx context.Context, id string) (*model.Order, error)
	Complete(ctx context.Context, id string) (*model.Order, error)
	ListAll(ctx context.Context) []model.Order
	ListForUser(ctx context.Context, userID string) []model.Order
}

type orderService struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders, now: time.Now}
}

// Checkout records a new order awaiting verification. Anonymous buyers are
// recorded under the guest user id.
func (s *orderService) Checkout(ctx context.Context, userID string, in CheckoutInput) (*model.Order, error) {
	if userID == "" {
		userID = model.GuestUserID
	}
	order := model.Order{
		ID:             model.NewTicket(),
		UserID:         userID,
		Service:        in.Service,
		Plan:           in.Plan,
		Amount:         in.Amount,
		Status:         model.OrderStatusPendingVerification,
		PaymentMethod:  in.PaymentMethod,
		TransactionID:  in.TransactionID,
		ProofOfPayment: in.ProofOfPayment,
		Date:           s.now().Format("2006-01-02"),
	}
	s.orders.Add(ctx, order)
	return &order, nil
}

// Approve marks a verified payment's order active.
func (s *orderService) Approve(ctx context.Context, id string) (*model.Order, error) {
	return s.transition(ctx, id, model.OrderStatusActive)
}

// Reject cancels an order whose payment could not be verified.
func (s *orderService) Reject(ctx context.Context, id string) (*model.Order, error) {
	return s.transition(ctx, id, model.OrderStatusCancelled)
}

// Complete closes out a delivered order.
func (s *orderService) Complete(ctx context.Context, id string) (*model.Order, error) {
	return s.transition(ctx, id, model.OrderStatusCompleted)
}

func (s *orderService) transition(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, apperrors.ErrOrderFinalized
	}
	order.Status = status
	if err := s.orders.Update(ctx, *order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListAll(ctx context.Context) []model.Order {
	return s.orders.GetAll(ctx)
}

func (s *orderService) ListForUser(ctx context.Context, userID string) []model.Order {
	return s.orders.FindByUser(ctx, userID)
}
