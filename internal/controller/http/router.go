package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/grocito/grocito/internal/model"
	"github.com/grocito/grocito/pgk/auth"
)

func InitRoutes(r *chi.Mux, c *Controller, secretKey string) *chi.Mux {
	r.Get("/ping", c.Ping)

	r.Post("/api/user/register", c.Register)
	r.Post("/api/user/login", c.Login)
	r.Get("/api/fee-quote", c.QuoteDeliveryFee)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthBearerMiddlewareInit[model.TokenInfo](secretKey))

		r.Get("/api/user/cart", c.GetCart)
		r.Put("/api/user/cart", c.UpdateCartItem)
		r.Delete("/api/user/cart", c.ClearCart)

		r.Post("/api/user/orders", c.PlaceOrder)
		r.Get("/api/user/orders", c.GetOrders)
		r.Delete("/api/user/orders/{number}", c.CancelOrder)
		r.Get("/api/user/orders/{number}/cancellation", c.GetCancellationWindow)

		r.Post("/api/partner/deliveries", c.RecordDelivery)
		r.Get("/api/partner/earnings", c.GetEarnings)
	})

	return r
}
