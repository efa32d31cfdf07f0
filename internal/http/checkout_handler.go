package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/payment"
)

type CheckoutService interface {
	FinalizePurchase(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, transactionID string, status domain.PaymentStatus) error
	GetPurchase(ctx context.Context, transactionID string) (*domain.Payment, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Payment, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Payment, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
	intents  payment.IntentCreator
}

func NewCheckoutHandler(checkout CheckoutService, intents payment.IntentCreator) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, intents: intents}
}

type finalizePurchaseRequestDTO struct {
	TransactionID string  `json:"transaction_id"`
	SellerEmail   string  `json:"seller_email"`
	Amount        float64 `json:"amount"`
}

// POST /checkout
func (h *CheckoutHandler) FinalizePurchase(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	var req finalizePurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.TransactionID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "transaction_id is required")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", "amount must be positive")
		return
	}

	record, err := h.checkout.FinalizePurchase(r.Context(), &domain.Payment{
		TransactionID: req.TransactionID,
		BuyerEmail:    p.Email,
		SellerEmail:   req.SellerEmail,
		Amount:        req.Amount,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

type updateStatusRequestDTO struct {
	Status string `json:"status"`
}

// PATCH /payments/{transactionId}/status
func (h *CheckoutHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")

	var req updateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Status == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "status is required")
		return
	}

	if err := h.checkout.UpdateStatus(r.Context(), transactionID, domain.PaymentStatus(req.Status)); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /payments
func (h *CheckoutHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	payments, err := h.checkout.ListByBuyer(r.Context(), p.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

// GET /seller/payments
func (h *CheckoutHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	payments, err := h.checkout.ListBySeller(r.Context(), p.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

type createIntentRequestDTO struct {
	Amount float64 `json:"amount"`
}

// POST /create-payment-intent
func (h *CheckoutHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", "amount must be positive")
		return
	}

	intent, err := h.intents.CreateIntent(r.Context(), req.Amount, "usd")
	if err != nil {
		respondError(w, http.StatusBadGateway, "payment_unavailable", "payment processor unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"client_secret": intent.ClientSecret})
}
