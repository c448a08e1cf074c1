package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/service"
)

// CartHandler handles cart line endpoints.
type CartHandler struct {
	svc service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// AddCartItemRequest represents an add-to-cart payload.
type AddCartItemRequest struct {
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	MenuItemID    string `json:"menu_item_id" validate:"required,uuid"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Price         string `json:"price" validate:"required"`
}

// AddCartItem godoc
// @Summary Add a line to a customer's cart
// @Tags carts
// @Accept json
// @Produce json
// @Param request body AddCartItemRequest true "Cart line"
// @Success 201 {object} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Router /carts [post]
func (h *CartHandler) AddCartItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	menuItemID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid menu_item_id",
			Code:  "INVALID_UUID",
		})
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_AMOUNT",
		})
	}

	item, err := h.svc.AddItem(c.Request().Context(), &model.CartItem{
		CustomerEmail: req.CustomerEmail,
		MenuItemID:    menuItemID,
		Name:          req.Name,
		Image:         req.Image,
		Price:         price,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to add to cart",
			Code:  "CART_ADD_FAILED",
		})
	}
	return c.JSON(http.StatusCreated, item)
}

// ListCart godoc
// @Summary List a customer's cart lines
// @Tags carts
// @Produce json
// @Param customer_email query string true "Customer email"
// @Success 200 {array} model.CartItem
// @Router /carts [get]
func (h *CartHandler) ListCart(c echo.Context) error {
	email := c.QueryParam("customer_email")

	items, err := h.svc.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list cart",
			Code:  "CART_LIST_FAILED",
		})
	}
	return c.JSON(http.StatusOK, items)
}

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Tags carts
// @Produce json
// @Param id path string true "Cart line ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /carts/{id} [delete]
func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.svc.RemoveItem(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "cart item removed"})
}
