package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// ProductHandler handles shop catalog endpoints.
type ProductHandler struct {
	products repository.ProductRepository
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// ProductRequest represents an admin create/update payload.
type ProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// List godoc
// @Summary List shop products
// @Tags shop
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.products.GetAll(c.Request().Context()))
}

// Create godoc
// @Summary Create a product
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	product := model.Product{
		ID:          model.NewID(),
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
	}
	h.products.Add(c.Request().Context(), product)
	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Update a product
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param request body ProductRequest true "Product data"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	product := model.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
	}
	if err := h.products.Update(c.Request().Context(), product); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete a product
// @Tags admin
// @Param id path string true "Product id"
// @Success 204 "deleted"
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	h.products.Delete(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// bindAndValidate runs Echo's bind + validate pair with the standard error shape.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}
