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

// MenuHandler handles catalog endpoints.
type MenuHandler struct {
	svc service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(svc service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// MenuItemRequest represents a catalog create/update payload.
type MenuItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Recipe   string `json:"recipe"`
	Image    string `json:"image"`
	Category string `json:"category" validate:"required"`
	Price    string `json:"price" validate:"required"`
}

// ListMenu godoc
// @Summary List the menu catalog
// @Tags menu
// @Produce json
// @Success 200 {array} model.MenuItem
// @Router /menu [get]
func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.svc.ListItems(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list menu",
			Code:  "MENU_LIST_FAILED",
		})
	}
	return c.JSON(http.StatusOK, items)
}

// GetMenuItem godoc
// @Summary Get one catalog entry
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} model.MenuItem
// @Failure 404 {object} errors.ErrorResponse
// @Router /menu/{id} [get]
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}

	item, err := h.svc.GetItem(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// CreateMenuItem godoc
// @Summary Create a catalog entry
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MenuItemRequest true "Menu item"
// @Success 201 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu [post]
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	item, httpErr := h.bindItem(c)
	if httpErr != nil {
		return httpErr
	}

	created, err := h.svc.CreateItem(c.Request().Context(), item)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to create menu item",
			Code:  "MENU_CREATE_FAILED",
		})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateMenuItem godoc
// @Summary Update a catalog entry
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body MenuItemRequest true "Menu item"
// @Success 200 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /menu/{id} [patch]
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}

	item, httpErr := h.bindItem(c)
	if httpErr != nil {
		return httpErr
	}
	item.ID = id

	updated, err := h.svc.UpdateItem(c.Request().Context(), item)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteMenuItem godoc
// @Summary Delete a catalog entry
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu/{id} [delete]
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.svc.DeleteItem(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to delete menu item",
			Code:  "MENU_DELETE_FAILED",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "menu item deleted"})
}

func (h *MenuHandler) bindItem(c echo.Context) (*model.MenuItem, error) {
	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_AMOUNT",
		})
	}

	return &model.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    price,
	}, nil
}
