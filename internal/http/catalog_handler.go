package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
)

// CatalogService is what this handler needs from the catalog component.
// Consumers define this interface, not the service implementation.
type CatalogService interface {
	Create(ctx context.Context, med *domain.Medicine) error
	Get(ctx context.Context, name string) (*domain.Medicine, error)
	List(ctx context.Context) ([]domain.Medicine, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Medicine, error)
	Update(ctx context.Context, name, sellerEmail string, upd domain.MedicineUpdate) error
	Delete(ctx context.Context, name, sellerEmail string) error
}

type CatalogHandler struct {
	catalog CatalogService
}

func NewCatalogHandler(catalog CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type createMedicineRequestDTO struct {
	Name               string  `json:"name"`
	Company            string  `json:"company"`
	Image              string  `json:"image"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

// POST /medicines
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	var req createMedicineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", "price must not be negative")
		return
	}
	if req.DiscountPercentage < 0 || req.DiscountPercentage > 100 {
		respondError(w, http.StatusBadRequest, "invalid_request", "discount must be between 0 and 100")
		return
	}

	med := &domain.Medicine{
		Name:               req.Name,
		Company:            req.Company,
		Image:              req.Image,
		Description:        req.Description,
		SellerEmail:        p.Email,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Flag:               domain.NotAdvertised,
	}
	if err := h.catalog.Create(r.Context(), med); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, med)
}

// GET /medicines
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	meds, err := h.catalog.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, meds)
}

// GET /medicines/{name}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	med, err := h.catalog.Get(r.Context(), name)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, med)
}

// GET /seller/medicines
func (h *CatalogHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	meds, err := h.catalog.ListBySeller(r.Context(), p.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, meds)
}

// PATCH /medicines/{name}
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())
	name := chi.URLParam(r, "name")

	var upd domain.MedicineUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if upd.Price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", "price must not be negative")
		return
	}
	if upd.DiscountPercentage < 0 || upd.DiscountPercentage > 100 {
		respondError(w, http.StatusBadRequest, "invalid_request", "discount must be between 0 and 100")
		return
	}

	if err := h.catalog.Update(r.Context(), name, p.Email, upd); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DELETE /medicines/{name}
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())
	name := chi.URLParam(r, "name")

	if err := h.catalog.Delete(r.Context(), name, p.Email); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
