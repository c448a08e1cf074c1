package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bistro/internal/auth"
	"bistro/internal/errors"
	"bistro/internal/service"
)

// PaymentHandler handles settlement, payment history and intent creation.
type PaymentHandler struct {
	svc service.CheckoutService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// SettleRequest represents a completed payment submitted for settlement.
// CartIDs and MenuIDs are parallel lists.
type SettleRequest struct {
	CustomerEmail string   `json:"customer_email" validate:"required,email"`
	Price         string   `json:"price" validate:"required"`
	TransactionID string   `json:"transaction_id"`
	CartIDs       []string `json:"cart_ids"`
	MenuIDs       []string `json:"menu_ids"`
}

// IntentRequest represents a payment intent creation request.
type IntentRequest struct {
	Price string `json:"price" validate:"required"`
}

// IntentResponse carries the processor's client secret back to the caller.
type IntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// Settle godoc
// @Summary Settle a completed payment against the submitted cart lines
// @Tags payments
// @Accept json
// @Produce json
// @Param request body SettleRequest true "Settlement submission"
// @Success 201 {object} service.SettlementResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Settle(c echo.Context) error {
	var req SettleRequest
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

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_AMOUNT",
		})
	}
	cartIDs, err := parseUUIDs(req.CartIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid cart_ids",
			Code:  "INVALID_UUID",
		})
	}
	menuIDs, err := parseUUIDs(req.MenuIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid menu_ids",
			Code:  "INVALID_UUID",
		})
	}

	result, err := h.svc.Settle(c.Request().Context(), service.SettlementSubmission{
		CustomerEmail: req.CustomerEmail,
		Price:         price,
		TransactionID: req.TransactionID,
		CartIDs:       cartIDs,
		MenuIDs:       menuIDs,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, result)
}

// History godoc
// @Summary List the caller's payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string true "Customer email, must match the caller"
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) History(c echo.Context) error {
	email := c.QueryParam("email")

	claims, ok := auth.CurrentClaims(c)
	if !ok || claims.Email != email {
		httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	payments, err := h.svc.History(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list payments",
			Code:  "PAYMENT_LIST_FAILED",
		})
	}
	return c.JSON(http.StatusOK, payments)
}

// CreateIntent godoc
// @Summary Create a payment intent with the external processor
// @Tags payments
// @Accept json
// @Produce json
// @Param request body IntentRequest true "Amount to charge"
// @Success 200 {object} IntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req IntentRequest
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

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_AMOUNT",
		})
	}

	secret, err := h.svc.CreatePaymentIntent(c.Request().Context(), price)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, IntentResponse{ClientSecret: secret})
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
