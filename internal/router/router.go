package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bistro/internal/auth"
	"bistro/internal/config"
	"bistro/internal/handler"
	"bistro/internal/repository"
)

// Register wires routes and middleware. Privileged routes pass through the
// identity resolver and, where required, the role guard; both are terminal
// on failure so gated handlers never run unauthenticated.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	paymentHandler *handler.PaymentHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	identity := auth.IdentityResolver(cfg.JWTSecret)
	admin := auth.RequireAdmin(userRepo)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// tokens
	e.POST("/jwt", authHandler.IssueToken)

	// users
	e.POST("/users", userHandler.CreateUser)
	e.GET("/users", userHandler.ListUsers, identity, admin)
	e.GET("/users/admin/:email", userHandler.CheckAdmin, identity)
	e.PATCH("/users/admin/:id", userHandler.PromoteUser, identity, admin)
	e.DELETE("/users/:id", userHandler.DeleteUser)

	// menu catalog
	e.GET("/menu", menuHandler.ListMenu)
	e.GET("/menu/:id", menuHandler.GetMenuItem)
	e.POST("/menu", menuHandler.CreateMenuItem, identity, admin)
	e.PATCH("/menu/:id", menuHandler.UpdateMenuItem, identity, admin)
	e.DELETE("/menu/:id", menuHandler.DeleteMenuItem, identity, admin)

	// carts
	e.POST("/carts", cartHandler.AddCartItem)
	e.GET("/carts", cartHandler.ListCart)
	e.DELETE("/carts/:id", cartHandler.RemoveCartItem)

	// payments
	e.GET("/payments", paymentHandler.History, identity)
	e.POST("/payments", paymentHandler.Settle)
	e.POST("/create-payment-intent", paymentHandler.CreateIntent)

	// analytics
	e.GET("/admin-stats", statsHandler.AdminStats, identity, admin)
	e.GET("/order-stats", statsHandler.OrderStats, identity, admin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
