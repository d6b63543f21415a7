package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dejobratic/shopfront/internal/catalogue/app"
	"github.com/dejobratic/shopfront/internal/catalogue/domain"
	"github.com/dejobratic/shopfront/internal/catalogue/ports"
)

// Handler exposes the catalogue REST API.
type Handler struct {
	service *app.Service
}

// NewHandler constructs a Handler.
func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// Register binds the catalogue handlers to the provided ServeMux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/catalogue-api/products", h.handleProducts)
	mux.HandleFunc("/catalogue-api/products/", h.handleProductByID)
}

type productPayload struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listProducts(w, r)
	case http.MethodPost:
		h.createProduct(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleProductByID(w http.ResponseWriter, r *http.Request) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/catalogue-api/products/"), "/")
	id, err := strconv.Atoi(trimmed)
	if err != nil || id < 1 {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getProduct(w, r, id)
	case http.MethodPatch:
		h.updateProduct(w, r, id)
	case http.MethodDelete:
		h.deleteProduct(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.FindAllProducts(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeValidationErrors(w, []string{"request body must be valid JSON"})
		return
	}

	product, err := h.service.CreateProduct(r.Context(), payload.Title, payload.Details)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			writeValidationErrors(w, validationErr.Messages)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/catalogue-api/products/%d", product.ID))
	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request, id int) {
	product, err := h.service.FindProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request, id int) {
	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeValidationErrors(w, []string{"request body must be valid JSON"})
		return
	}

	if err := h.service.UpdateProduct(r.Context(), id, payload.Title, payload.Details); err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeValidationErrors(w, validationErr.Messages)
		case errors.Is(err, ports.ErrNotFound):
			writeError(w, http.StatusNotFound, "product not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update product")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

// writeValidationErrors reports a rejected payload in the shape consumers
// re-render verbatim: an ordered list of messages.
func writeValidationErrors(w http.ResponseWriter, messages []string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": messages})
}
