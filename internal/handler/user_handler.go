package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bistro/internal/auth"
	"bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a user creation request.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// CreateUser godoc
// @Summary Create user on first sign-in (idempotent by email)
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 200 {object} map[string]interface{}
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
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

	user, err := h.svc.EnsureUser(c.Request().Context(), &model.User{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if err == service.ErrUserAlreadyExists {
			return c.JSON(http.StatusOK, map[string]interface{}{
				"message":  "user already exists",
				"inserted": false,
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to create user",
			Code:  "USER_CREATE_FAILED",
		})
	}

	return c.JSON(http.StatusCreated, user)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to list users",
			Code:  "USER_LIST_FAILED",
		})
	}
	return c.JSON(http.StatusOK, users)
}

// CheckAdmin godoc
// @Summary Check whether an email holds the elevated role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email to check"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	email := c.Param("email")

	// callers may only ask about their own identity
	claims, ok := auth.CurrentClaims(c)
	if !ok || claims.Email != email {
		httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	admin, err := h.svc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to check role",
			Code:  "ROLE_CHECK_FAILED",
		})
	}
	return c.JSON(http.StatusOK, map[string]bool{"admin": admin})
}

// PromoteUser godoc
// @Summary Promote a user to the elevated role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/admin/{id} [patch]
func (h *UserHandler) PromoteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.svc.PromoteToAdmin(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user promoted"})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.svc.DeleteUser(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to delete user",
			Code:  "USER_DELETE_FAILED",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
