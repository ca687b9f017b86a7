package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"storefront-api/internal/dto"

	"github.com/go-chi/chi/v5"
)

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		writeErr(w, r, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *handlers) topProducts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.products.Top5(r.Context())
	if err != nil {
		writeErr(w, r, "top products", err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *handlers) productsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	products, err := h.products.ByCategory(r.Context(), category)
	if err != nil {
		writeErr(w, r, "products by category", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *handlers) showProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUint(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	prod, err := h.products.Get(r.Context(), id)
	if err != nil {
		writeErr(w, r, "show product", err)
		return
	}
	writeJSON(w, http.StatusOK, prod)
}

func (h *handlers) createProduct(w http.ResponseWriter, r *http.Request) {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "application/json" {
		writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{"error": "Content-Type must be application/json"})
		return
	}
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	prod, err := h.products.Create(r.Context(), req)
	if err != nil {
		writeErr(w, r, "create product", err)
		return
	}
	writeJSON(w, http.StatusCreated, prod)
}
