package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/logger"
)

type RouterConfig struct {
	TokenSecret    []byte
	RequestTimeout time.Duration
}

type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Cart      *CartHandler
	Promotion *PromotionHandler
	Checkout  *CheckoutHandler
	Stats     *StatsHandler
}

// NewRouter wires the transport shell. All business behavior lives in the
// services; this layer only authenticates, decodes and dispatches.
func NewRouter(cfg RouterConfig, h Handlers, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger(log))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth endpoints are open; everything else needs the token cookie.
	r.Post("/jwt", h.Auth.IssueToken)
	r.Get("/logout", h.Auth.Logout)

	auth := AuthMiddleware(cfg.TokenSecret)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/medicines", h.Catalog.List)
		r.Get("/medicines/{name}", h.Catalog.Get)
		r.Get("/slider", h.Promotion.ListSlider)

		r.Get("/carts", h.Cart.GetCart)
		r.Post("/carts", h.Cart.AddItem)
		r.Patch("/carts/{name}/increase", h.Cart.IncreaseQuantity)
		r.Patch("/carts/{name}/decrease", h.Cart.DecreaseQuantity)
		r.Delete("/carts/{id}", h.Cart.RemoveItem)
		r.Delete("/carts", h.Cart.ClearCart)

		r.Post("/checkout", h.Checkout.FinalizePurchase)
		r.Post("/create-payment-intent", h.Checkout.CreatePaymentIntent)
		r.Patch("/payments/{transactionId}/status", h.Checkout.UpdateStatus)
		r.Get("/payments", h.Checkout.ListMine)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth, RequireRole("seller"))

		r.Post("/medicines", h.Catalog.Create)
		r.Patch("/medicines/{name}", h.Catalog.Update)
		r.Delete("/medicines/{name}", h.Catalog.Delete)
		r.Get("/seller/medicines", h.Catalog.ListMine)

		r.Post("/advertisements", h.Promotion.RequestAdvertisement)
		r.Get("/seller/advertisements", h.Promotion.ListMine)

		r.Get("/seller/payments", h.Checkout.ListSales)
		r.Get("/seller/stats", h.Stats.SellerTotals)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth, RequireRole("admin"))

		r.Get("/advertisements", h.Promotion.ListAdvertisements)
		r.Patch("/advertisements/{name}/toggle", h.Promotion.Toggle)
		r.Get("/admin/stats", h.Stats.MarketplaceTotals)
	})

	return r
}
