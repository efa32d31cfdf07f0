package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartService interface {
	GetCart(ctx context.Context, buyerEmail string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, item *domain.CartItem) error
	IncreaseQuantity(ctx context.Context, itemName, buyerEmail string) error
	DecreaseQuantity(ctx context.Context, itemName, buyerEmail string) error
	RemoveItem(ctx context.Context, id primitive.ObjectID, buyerEmail string) error
	ClearCart(ctx context.Context, buyerEmail string) (int64, error)
}

type CartHandler struct {
	cart CartService
}

func NewCartHandler(cart CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addCartItemRequestDTO struct {
	ItemName    string  `json:"item_name"`
	SellerEmail string  `json:"seller_email"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// GET /carts
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	items, err := h.cart.GetCart(r.Context(), p.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// POST /carts
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	var req addCartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemName == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "item_name is required")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1")
		return
	}

	item := &domain.CartItem{
		ItemName:    req.ItemName,
		BuyerEmail:  p.Email,
		SellerEmail: req.SellerEmail,
		Image:       req.Image,
		Quantity:    req.Quantity,
		Price:       req.Price,
	}
	if err := h.cart.AddItem(r.Context(), item); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// PATCH /carts/{name}/increase
func (h *CartHandler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())
	name := chi.URLParam(r, "name")

	if err := h.cart.IncreaseQuantity(r.Context(), name, p.Email); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// PATCH /carts/{name}/decrease
func (h *CartHandler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())
	name := chi.URLParam(r, "name")

	if err := h.cart.DecreaseQuantity(r.Context(), name, p.Email); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DELETE /carts/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a valid object id")
		return
	}

	if err := h.cart.RemoveItem(r.Context(), id, p.Email); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DELETE /carts
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	deleted, err := h.cart.ClearCart(r.Context(), p.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deleted_count": deleted})
}
