package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dejobratic/shopfront/internal/customer/app"
	"github.com/dejobratic/shopfront/internal/customer/domain"
)

// SubjectHeader carries the authenticated caller's opaque subject id, set
// by the auth layer in front of the app.
const SubjectHeader = "X-Subject"

// Handler exposes the customer product pages. It maps the orchestrator's
// terminal outcomes onto HTTP: ready pages render as JSON models, redirects
// become 303s, rejected submissions re-render with 422, and downstream
// unavailability surfaces as a bare 502 with no partial page.
type Handler struct {
	service *app.Service
}

// NewHandler constructs a Handler.
func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// Register binds the customer handlers to the provided ServeMux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/customer/products/list", h.listProducts)
	mux.HandleFunc("/customer/products/favourites", h.listFavourites)
	mux.HandleFunc("/customer/products/", h.handleProduct)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if _, ok := subjectFrom(w, r); !ok {
		return
	}

	page, err := h.service.ListProducts(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "service temporarily unavailable")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) listFavourites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	subject, ok := subjectFrom(w, r)
	if !ok {
		return
	}

	page, err := h.service.ListFavourites(r.Context(), r.URL.Query().Get("filter"), subject)
	if err != nil {
		writeError(w, http.StatusBadGateway, "service temporarily unavailable")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleProduct(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFrom(w, r)
	if !ok {
		return
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/customer/products/"), "/")
	idPart, action, _ := strings.Cut(trimmed, "/")

	productID, err := strconv.Atoi(idPart)
	if err != nil || productID < 1 {
		writeError(w, http.StatusNotFound, domain.NotFoundKey)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.writeResult(w, h.service.ViewProduct(r.Context(), productID, subject))

	case action == "create-review" && r.Method == http.MethodPost:
		var payload domain.NewReviewPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		h.writeResult(w, h.service.CreateReview(r.Context(), productID, payload, subject))

	case action == "add-to-favourites" && r.Method == http.MethodPost:
		h.writeResult(w, h.service.AddToFavourites(r.Context(), productID, subject))

	case action == "remove-from-favourites" && r.Method == http.MethodPost:
		h.writeResult(w, h.service.RemoveFromFavourites(r.Context(), productID, subject))

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) writeResult(w http.ResponseWriter, result domain.Result) {
	switch result.Outcome {
	case domain.OutcomeReady:
		writeJSON(w, http.StatusOK, result.Page)

	case domain.OutcomeRedirect:
		w.Header().Set("Location", fmt.Sprintf("/customer/products/%d", result.RedirectTo))
		w.WriteHeader(http.StatusSeeOther)

	case domain.OutcomeReRender:
		writeJSON(w, http.StatusUnprocessableEntity, result.Page)

	case domain.OutcomeNotFound:
		writeError(w, http.StatusNotFound, result.ErrorKey)

	case domain.OutcomeFailed:
		writeError(w, http.StatusBadGateway, "service temporarily unavailable")

	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
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

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
