package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dejobratic/shopfront/internal/feedback/app"
	"github.com/dejobratic/shopfront/internal/feedback/domain"
	"github.com/dejobratic/shopfront/internal/feedback/ports"
)

// SubjectHeader carries the authenticated caller's opaque subject id. The
// auth layer in front of the service sets it; the service trusts it.
const SubjectHeader = "X-Subject"

// Handler exposes the feedback REST API.
type Handler struct {
	service *app.Service
}

// NewHandler constructs a Handler.
func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// Register binds the feedback handlers to the provided ServeMux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/feedback-api/product-reviews", h.handleReviews)
	mux.HandleFunc("/feedback-api/product-reviews/by-product-id/", h.handleReviewsByProduct)
	mux.HandleFunc("/feedback-api/favourite-products", h.handleFavourites)
	mux.HandleFunc("/feedback-api/favourite-products/by-product-id/", h.handleFavouriteByProduct)
}

type newReviewPayload struct {
	ProductID int    `json:"productId"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
}

type newFavouritePayload struct {
	ProductID int `json:"productId"`
}

func (h *Handler) handleReviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	subject, ok := subjectFrom(w, r)
	if !ok {
		return
	}

	var payload newReviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeValidationErrors(w, []string{"request body must be valid JSON"})
		return
	}

	review, err := h.service.CreateReview(r.Context(), payload.ProductID, payload.Rating, payload.Review, subject)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			writeValidationErrors(w, validationErr.Messages)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create review")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/feedback-api/product-reviews/%s", review.ID))
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) handleReviewsByProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	productID, ok := productIDFrom(w, r, "/feedback-api/product-reviews/by-product-id/")
	if !ok {
		return
	}

	reviews, err := h.service.FindReviewsByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) handleFavourites(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFrom(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		favourites, err := h.service.FindFavourites(r.Context(), subject)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list favourites")
			return
		}
		writeJSON(w, http.StatusOK, favourites)

	case http.MethodPost:
		var payload newFavouritePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeValidationErrors(w, []string{"request body must be valid JSON"})
			return
		}

		favourite, err := h.service.AddToFavourites(r.Context(), payload.ProductID, subject)
		if err != nil {
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				writeValidationErrors(w, validationErr.Messages)
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to add favourite")
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/feedback-api/favourite-products/%s", favourite.ID))
		writeJSON(w, http.StatusCreated, favourite)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleFavouriteByProduct(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFrom(w, r)
	if !ok {
		return
	}

	productID, ok := productIDFrom(w, r, "/feedback-api/favourite-products/by-product-id/")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		favourite, err := h.service.FindFavouriteByProduct(r.Context(), productID, subject)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				writeError(w, http.StatusNotFound, "favourite product not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load favourite")
			return
		}
		writeJSON(w, http.StatusOK, favourite)

	case http.MethodDelete:
		if err := h.service.RemoveFromFavourites(r.Context(), productID, subject); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to remove favourite")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func subjectFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	subject := strings.TrimSpace(r.Header.Get(SubjectHeader))
	if subject == "" {
		writeError(w, http.StatusUnauthorized, "missing subject")
		return "", false
	}
	return subject, true
}

func productIDFrom(w http.ResponseWriter, r *http.Request, prefix string) (int, bool) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, prefix), "/")
	id, err := strconv.Atoi(trimmed)
	if err != nil || id < 1 {
		writeError(w, http.StatusNotFound, "product not found")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func writeValidationErrors(w http.ResponseWriter, messages []string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": messages})
}
