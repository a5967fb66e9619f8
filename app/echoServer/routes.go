package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/auth"
	"github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/cart"
	"github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/catalog"
	"github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/order"
	"github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/payment"
	"github.com/KasunInd27/CampQuest-sub000/app/echoServer/jwtx"
)

type C struct {
	Auth    *auth.Controller
	Catalog *catalog.Controller
	Cart    *cart.Controller
	Order   *order.Controller
	Payment *payment.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)
	pub.GET("/products", c.Catalog.List)
	pub.GET("/products/:id", c.Catalog.Detail)

	// Authenticated
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
	}))
	authed.Use(extractIdentity)

	// Cart
	authed.GET("/cart", c.Cart.Get)
	authed.POST("/cart/lines", c.Cart.AddLine)
	authed.PUT("/cart/lines/:productId", c.Cart.UpdateQuantity)
	authed.PUT("/cart/lines/:productId/days", c.Cart.UpdateRentalDays)
	authed.DELETE("/cart/lines/:productId", c.Cart.RemoveLine)
	authed.DELETE("/cart", c.Cart.Clear)

	// Orders (customer)
	authed.POST("/orders/checkout", c.Order.Checkout)
	authed.POST("/orders/packages", c.Order.PackageCheckout)
	authed.GET("/orders/my", c.Order.MyOrders)
	authed.GET("/orders/:id", c.Order.Detail)
	authed.POST("/orders/:id/cancel", c.Order.Cancel)
	authed.PUT("/orders/:id/contact", c.Order.EditContact)
	authed.POST("/orders/:id/payment-slip", c.Payment.SubmitSlip)

	// Staff
	staff := authed.Group("/staff", RequireRole("staff"))
	staff.GET("/orders", c.Order.List)
	staff.GET("/orders/:id", c.Order.StaffDetail)
	staff.POST("/orders/:id/status", c.Order.UpdateStatus)
	staff.POST("/orders/:id/priority", c.Order.UpdatePriority)
	staff.POST("/orders/bulk/status", c.Order.BulkStatus)
	staff.POST("/orders/bulk/priority", c.Order.BulkPriority)
	staff.POST("/orders/:id/payment/verify", c.Payment.Verify)
	staff.POST("/orders/:id/payment/refund", c.Payment.Refund)
	staff.POST("/products", c.Catalog.Create)
	staff.POST("/products/:id/stock", c.Catalog.AddStock)
}

// extractIdentity lifts the verified claims into plain context keys the
// controllers read.
func extractIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		userID, err := jwtx.UserIDFromContext(ctx)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		ctx.Set("user_id", userID)
		return next(ctx)
	}
}
