package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/service"
)

// OrderHandler handles checkout and admin payment verification.
type OrderHandler struct {
	orderService service.OrderService
	authService  service.AuthService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService, authService service.AuthService) *OrderHandler {
	return &OrderHandler{orderService: orderService, authService: authService}
}

// CheckoutRequest represents a checkout submission. ProofOfPayment carries
// the uploaded receipt as an embedded data URL.
type CheckoutRequest struct {
	Service        string `json:"service" validate:"required"`
	Plan           string `json:"plan" validate:"required"`
	Amount         string `json:"amount" validate:"required"`
	PaymentMethod  string `json:"paymentMethod" validate:"required"`
	TransactionID  string `json:"transactionId"`
	ProofOfPayment string `json:"proofOfPayment"`
}

// Checkout godoc
// @Summary Place an order awaiting manual payment verification
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Checkout data"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	ctx := c.Request().Context()
	userID := ""
	if user := h.authService.Current(ctx); user != nil {
		userID = user.ID
	}

	order, err := h.orderService.Checkout(ctx, userID, service.CheckoutInput{
		Service:        req.Service,
		Plan:           req.Plan,
		Amount:         amount,
		PaymentMethod:  req.PaymentMethod,
		TransactionID:  req.TransactionID,
		ProofOfPayment: req.ProofOfPayment,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, order)
}

// Mine godoc
// @Summary List the signed-in user's orders
// @Tags orders
// @Produce json
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders/mine [get]
func (h *OrderHandler) Mine(c echo.Context) error {
	user := sessionUser(c)
	orders := h.orderService.ListForUser(c.Request().Context(), user.ID)
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll returns every order, newest first, for the admin console.
func (h *OrderHandler) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.orderService.ListAll(c.Request().Context()))
}

// Approve godoc
// @Summary Mark an order's payment verified
// @Tags admin
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/orders/{id}/approve [post]
func (h *OrderHandler) Approve(c echo.Context) error {
	return h.transition(c, h.orderService.Approve)
}

// Reject godoc
// @Summary Cancel an order whose payment failed verification
// @Tags admin
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/orders/{id}/reject [post]
func (h *OrderHandler) Reject(c echo.Context) error {
	return h.transition(c, h.orderService.Reject)
}

// Complete closes out a delivered order.
func (h *OrderHandler) Complete(c echo.Context) error {
	return h.transition(c, h.orderService.Complete)
}

func (h *OrderHandler) transition(c echo.Context, fn func(ctx context.Context, id string) (*model.Order, error)) error {
	order, err := fn(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, order)
}
