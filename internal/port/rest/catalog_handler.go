package rest

import (
	"errors"
	"net/http"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/service"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalog service.CatalogService
	log     logger.Logger
}

func NewCatalogHandler(catalog service.CatalogService, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	products, err := h.catalog.ProductsByCategory(r.Context(), name)
	if err != nil {
		h.log.Errorf("Failed to list products in category %s: %v", name, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product entity.Product
	if !decodeBody(w, r, &product) {
		return
	}

	res, err := h.catalog.CreateProduct(r.Context(), &product)
	if err != nil {
		h.log.Errorf("Failed to create product: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Products(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.Product(r.Context(), id)
	if err != nil {
		// An absent product serializes as null, matching the historical
		// pass-through of a findOne miss.
		if errors.Is(err, repository.ErrNotFound) {
			respondJSON(w, http.StatusOK, nil)
			return
		}
		h.log.Errorf("Failed to get product %s: %v", id, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.catalog.DeleteProduct(r.Context(), id)
	if err != nil {
		h.log.Errorf("Failed to delete product %s: %v", id, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ListSellerProducts trusts the email query parameter; there is no
// cross-check that the caller is that seller.
func (h *CatalogHandler) ListSellerProducts(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	products, err := h.catalog.SellerProducts(r.Context(), email)
	if err != nil {
		h.log.Errorf("Failed to list products for seller %s: %v", email, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) AdvertiseProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.catalog.AdvertiseProduct(r.Context(), id)
	if err != nil {
		h.log.Errorf("Failed to advertise product %s: %v", id, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) ListAdvertisedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.AdvertisedProducts(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list advertised products: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}
