package model

import "github.com/shopspring/decimal"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPendingPayment      OrderStatus = "pending_payment"
	OrderStatusPendingVerification OrderStatus = "pending_verification"
	OrderStatusActive              OrderStatus = "active"
	OrderStatusCompleted           OrderStatus = "completed"
	OrderStatusCancelled           OrderStatus = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// GuestUserID marks orders placed without a signed-in account.
const GuestUserID = "guest"

// Order is a client purchase awaiting manual payment verification. Orders are
// never removed, only status-transitioned, and the collection is kept
// newest-first.
type Order struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Service        string          `json:"service"`
	Plan           string          `json:"plan"`
	Amount         decimal.Decimal `json:"amount"`
	Status         OrderStatus     `json:"status"`
	PaymentMethod  string          `json:"paymentMethod"`
	TransactionID  string          `json:"transactionId"`
	ProofOfPayment string          `json:"proofOfPayment"`
	Date           string          `json:"date"`
}
