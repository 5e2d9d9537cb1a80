package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll(ctx context.Context) []model.Order {
	args := m.Called(ctx)
	return args.Get(0).([]model.Order)
}

func (m *MockOrderRepository) SaveAll(ctx context.Context, orders []model.Order) {
	m.Called(ctx, orders)
}

func (m *MockOrderRepository) Add(ctx context.Context, order model.Order) {
	m.Called(ctx, order)
}

func (m *MockOrderRepository) Update(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID string) []model.Order {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Order)
}

func TestOrderService_Checkout(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		expectedUserID string
	}{
		{name: "signed-in buyer", userID: "u-demo", expectedUserID: "u-demo"},
		{name: "anonymous buyer becomes guest", userID: "", expectedUserID: model.GuestUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			mockRepo.On("Add", mock.Anything, mock.AnythingOfType("model.Order")).Return()

			svc := NewOrderService(mockRepo)
			order, err := svc.Checkout(context.Background(), tt.userID, CheckoutInput{
				Service:       "web-design",
				Plan:          "Business",
				Amount:        decimal.NewFromInt(999),
				PaymentMethod: "bank",
			})

			assert.NoError(t, err)
			assert.Equal(t, model.OrderStatusPendingVerification, order.Status)
			assert.Equal(t, tt.expectedUserID, order.UserID)
			assert.True(t, decimal.NewFromInt(999).Equal(order.Amount))
			assert.NotEmpty(t, order.ID)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_Verification(t *testing.T) {
	base := model.Order{
		ID:            "SF-1",
		UserID:        "u-demo",
		Service:       "web-design",
		Plan:          "Starter",
		Amount:        decimal.NewFromInt(499),
		Status:        model.OrderStatusPendingVerification,
		PaymentMethod: "payoneer",
		TransactionID: "tx-9",
	}

	tests := []struct {
		name           string
		action         string
		current        model.OrderStatus
		expectedStatus model.OrderStatus
		expectedError  error
	}{
		{name: "approve activates", action: "approve", current: model.OrderStatusPendingVerification, expectedStatus: model.OrderStatusActive},
		{name: "reject cancels", action: "reject", current: model.OrderStatusPendingVerification, expectedStatus: model.OrderStatusCancelled},
		{name: "complete closes out", action: "complete", current: model.OrderStatusActive, expectedStatus: model.OrderStatusCompleted},
		{name: "approve on completed fails", action: "approve", current: model.OrderStatusCompleted, expectedError: apperrors.ErrOrderFinalized},
		{name: "reject on cancelled fails", action: "reject", current: model.OrderStatusCancelled, expectedError: apperrors.ErrOrderFinalized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := base
			existing.Status = tt.current

			mockRepo := new(MockOrderRepository)
			mockRepo.On("FindByID", mock.Anything, "SF-1").Return(&existing, nil)
			if tt.expectedError == nil {
				mockRepo.On("Update", mock.Anything, mock.AnythingOfType("model.Order")).Return(nil)
			}

			svc := NewOrderService(mockRepo)

			var (
				order *model.Order
				err   error
			)
			switch tt.action {
			case "approve":
				order, err = svc.Approve(context.Background(), "SF-1")
			case "reject":
				order, err = svc.Reject(context.Background(), "SF-1")
			case "complete":
				order, err = svc.Complete(context.Background(), "SF-1")
			}

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, order.Status)
				// verification touches nothing but the status
				want := base
				want.Status = tt.expectedStatus
				assert.Equal(t, want, *order)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UnknownOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockRepo.On("FindByID", mock.Anything, "SF-missing").Return(nil, apperrors.ErrOrderNotFound)

	svc := NewOrderService(mockRepo)
	_, err := svc.Approve(context.Background(), "SF-missing")

	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
	mockRepo.AssertExpectations(t)
}
