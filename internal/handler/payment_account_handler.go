package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// PaymentAccountHandler handles payout destination endpoints.
type PaymentAccountHandler struct {
	accounts repository.PaymentAccountRepository
}

// NewPaymentAccountHandler creates a new payment account handler.
func NewPaymentAccountHandler(accounts repository.PaymentAccountRepository) *PaymentAccountHandler {
	return &PaymentAccountHandler{accounts: accounts}
}

// PaymentAccountRequest represents an admin create/update payload.
type PaymentAccountRequest struct {
	Type         model.PaymentAccountType `json:"type" validate:"required,oneof=payoneer paypal bank"`
	Name         string                   `json:"name" validate:"required"`
	Identifier   string                   `json:"identifier" validate:"required"`
	Instructions string                   `json:"instructions"`
}

// List godoc
// @Summary List payment destinations shown at checkout
// @Tags shop
// @Produce json
// @Success 200 {array} model.PaymentAccount
// @Router /payment-accounts [get]
func (h *PaymentAccountHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.accounts.GetAll(c.Request().Context()))
}

// Create adds a payment account.
func (h *PaymentAccountHandler) Create(c echo.Context) error {
	var req PaymentAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	account := model.PaymentAccount{
		ID:           model.NewID(),
		Type:         req.Type,
		Name:         req.Name,
		Identifier:   req.Identifier,
		Instructions: req.Instructions,
	}
	h.accounts.Add(c.Request().Context(), account)
	return c.JSON(http.StatusCreated, account)
}

// Update replaces a payment account by id.
func (h *PaymentAccountHandler) Update(c echo.Context) error {
	var req PaymentAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	account := model.PaymentAccount{
		ID:           c.Param("id"),
		Type:         req.Type,
		Name:         req.Name,
		Identifier:   req.Identifier,
		Instructions: req.Instructions,
	}
	if err := h.accounts.Update(c.Request().Context(), account); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, account)
}

// Delete removes a payment account by id.
func (h *PaymentAccountHandler) Delete(c echo.Context) error {
	h.accounts.Delete(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
