package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig bundles the handlers and global settings for the HTTP surface
type RouterConfig struct {
	RequestTimeout time.Duration

	Chat          *ChatHandler
	Cart          *CartHandler
	Inventory     *InventoryHandler
	Checkout      *CheckoutHandler
	Notifications *NotificationsHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(MockAuthMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Get("/messages", cfg.Chat.GetMessages)
			r.Post("/messages", cfg.Chat.SendMessage)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cfg.Cart.GetCart)
			r.Post("/items", cfg.Cart.AddItem)
			r.Put("/items/{product_id}", cfg.Cart.UpdateQuantity)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", cfg.Inventory.ListInventory)
			r.Post("/{product_id}/cart", cfg.Inventory.AddToCart)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", cfg.Checkout.GetFlow)
			r.Post("/", cfg.Checkout.BeginCheckout)
			r.Post("/details", cfg.Checkout.SubmitDetails)
			r.Post("/payment", cfg.Checkout.SubmitPayment)
			r.Post("/back", cfg.Checkout.Back)
			r.Post("/continue", cfg.Checkout.ContinueShopping)
		})

		r.Get("/notifications", cfg.Notifications.Drain)
	})

	return r
}
