package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/service"
)

type PromotionService interface {
	RequestAdvertisement(ctx context.Context, ad *domain.Advertisement) error
	ListAdvertisements(ctx context.Context) ([]domain.Advertisement, error)
	ListAdvertisementsBySeller(ctx context.Context, sellerEmail string) ([]domain.Advertisement, error)
	Toggle(ctx context.Context, itemName string, payload domain.SliderItem) (*service.ToggleResult, error)
	ListSlider(ctx context.Context) ([]domain.SliderItem, error)
}

type PromotionHandler struct {
	promos PromotionService
}

func NewPromotionHandler(promos PromotionService) *PromotionHandler {
	return &PromotionHandler{promos: promos}
}

type advertisementRequestDTO struct {
	ItemName    string `json:"item_name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// POST /advertisements
func (h *PromotionHandler) RequestAdvertisement(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	var req advertisementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemName == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "item_name is required")
		return
	}

	ad := &domain.Advertisement{
		ItemName:    req.ItemName,
		SellerEmail: p.Email,
		Image:       req.Image,
		Description: req.Description,
		Flag:        domain.NotAdvertised,
	}
	if err := h.promos.RequestAdvertisement(r.Context(), ad); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, ad)
}

// GET /advertisements
func (h *PromotionHandler) ListAdvertisements(w http.ResponseWriter, r *http.Request) {
	ads, err := h.promos.ListAdvertisements(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ads)
}

// GET /seller/advertisements
func (h *PromotionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	ads, err := h.promos.ListAdvertisementsBySeller(r.Context(), p.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ads)
}

type toggleRequestDTO struct {
	Image       string `json:"image"`
	Description string `json:"description"`
}

// PATCH /advertisements/{name}/toggle
func (h *PromotionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req toggleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.promos.Toggle(r.Context(), name, domain.SliderItem{
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GET /slider
func (h *PromotionHandler) ListSlider(w http.ResponseWriter, r *http.Request) {
	items, err := h.promos.ListSlider(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}
