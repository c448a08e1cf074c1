package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCartEmpty is returned when a settlement submission carries no cart ids.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCartMismatch is returned when cart and menu id lists disagree in length.
	ErrCartMismatch = errors.New("cart and menu ids do not match")
	// ErrInvalidAmount is returned when a price is zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden is returned when the caller lacks the required role or
	// acts on another identity's resource.
	ErrForbidden = errors.New("forbidden access")
	// ErrStorageUnavailable is returned when the backing store rejects a write.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrPaymentIntent is returned when the external processor fails to
	// create a payment intent.
	ErrPaymentIntent = errors.New("payment intent creation failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrCartEmpty):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	case errors.Is(err, ErrCartMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CART_MENU_MISMATCH")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrStorageUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error(), "STORAGE_UNAVAILABLE")
	case errors.Is(err, ErrPaymentIntent):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "PAYMENT_INTENT_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
