package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/dejobratic/shopfront/internal/catalogue/adapters/http"
	"github.com/dejobratic/shopfront/internal/catalogue/adapters/memory"
	"github.com/dejobratic/shopfront/internal/catalogue/app"
	"github.com/dejobratic/shopfront/internal/catalogue/domain"
)

func newTestMux(t *testing.T) (*http.ServeMux, *app.Service) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := app.NewService(memory.NewRepository(), logger)
	handler := httpadapter.NewHandler(service)

	mux := http.NewServeMux()
	handler.Register(mux)
	return mux, service
}

func doRequest(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return out
}

func TestCreateProductEndpoint(t *testing.T) {
	t.Run("creates product and returns 201 with location", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := doRequest(mux, http.MethodPost, "/catalogue-api/products",
			`{"title":"Wireless Mouse","details":"A mouse without wires"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := rec.Header().Get("Location"); got != "/catalogue-api/products/1" {
			t.Errorf("expected Location /catalogue-api/products/1, got %q", got)
		}

		product := decodeBody[domain.Product](t, rec)
		if product.ID != 1 || product.Title != "Wireless Mouse" {
			t.Errorf("unexpected product: %+v", product)
		}
	})

	t.Run("returns 400 with ordered errors for invalid payload", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := doRequest(mux, http.MethodPost, "/catalogue-api/products",
			`{"title":"ab","details":"`+strings.Repeat("x", 1001)+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}

		body := decodeBody[map[string][]string](t, rec)
		want := []string{
			"title must be between 3 and 50 characters",
			"details must be at most 1000 characters",
		}
		if len(body["errors"]) != len(want) {
			t.Fatalf("expected %d errors, got %v", len(want), body["errors"])
		}
		for i, message := range want {
			if body["errors"][i] != message {
				t.Errorf("error %d: expected %q, got %q", i, message, body["errors"][i])
			}
		}
	})

	t.Run("returns 400 for malformed JSON", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := doRequest(mux, http.MethodPost, "/catalogue-api/products", `{not json`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestGetProductEndpoint(t *testing.T) {
	t.Run("returns existing product", func(t *testing.T) {
		mux, service := newTestMux(t)
		created, err := service.CreateProduct(context.Background(), "Desk Lamp", "warm light")
		if err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}

		rec := doRequest(mux, http.MethodGet, "/catalogue-api/products/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		product := decodeBody[domain.Product](t, rec)
		if product.ID != created.ID || product.Title != "Desk Lamp" {
			t.Errorf("unexpected product: %+v", product)
		}
	})

	t.Run("returns 404 with detail for missing product", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := doRequest(mux, http.MethodGet, "/catalogue-api/products/99", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
		body := decodeBody[map[string]string](t, rec)
		if body["detail"] == "" {
			t.Error("expected detail message in 404 body")
		}
	})

	t.Run("returns 404 for non-numeric id", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := doRequest(mux, http.MethodGet, "/catalogue-api/products/abc", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestListProductsEndpoint(t *testing.T) {
	mux, service := newTestMux(t)
	ctx := context.Background()

	for _, title := range []string{"Desk Lamp", "Wireless Mouse", "Floor Lamp"} {
		if _, err := service.CreateProduct(ctx, title, ""); err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}

	t.Run("lists all products", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/catalogue-api/products", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		products := decodeBody[[]domain.Product](t, rec)
		if len(products) != 3 {
			t.Errorf("expected 3 products, got %d", len(products))
		}
	})

	t.Run("filters by title substring case-insensitively", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/catalogue-api/products?filter=lamp", "")

		products := decodeBody[[]domain.Product](t, rec)
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d: %+v", len(products), products)
		}
		if products[0].Title != "Desk Lamp" || products[1].Title != "Floor Lamp" {
			t.Errorf("expected lamps ordered by ID, got %+v", products)
		}
	})

	t.Run("returns empty list for unmatched filter", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/catalogue-api/products?filter=zzz", "")

		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Errorf("expected empty JSON array, got %q", rec.Body.String())
		}
	})
}

func TestUpdateProductEndpoint(t *testing.T) {
	t.Run("updates product and returns 204", func(t *testing.T) {
		mux, service := newTestMux(t)
		if _, err := service.CreateProduct(context.Background(), "Desk Lamp", ""); err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}

		rec := doRequest(mux, http.MethodPatch, "/catalogue-api/products/1",
			`{"title":"Desk Lamp v2","details":"brighter"}`)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d: %s", rec.Code, rec.Body.String())
		}

		updated, err := service.FindProduct(context.Background(), 1)
		if err != nil {
			t.Fatalf("failed to reload product: %v", err)
		}
		if updated.Title != "Desk Lamp v2" || updated.Details != "brighter" {
			t.Errorf("unexpected product after update: %+v", updated)
		}
	})

	t.Run("returns 404 for missing product", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := doRequest(mux, http.MethodPatch, "/catalogue-api/products/99",
			`{"title":"Valid Title"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for invalid payload", func(t *testing.T) {
		mux, service := newTestMux(t)
		if _, err := service.CreateProduct(context.Background(), "Desk Lamp", ""); err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}

		rec := doRequest(mux, http.MethodPatch, "/catalogue-api/products/1", `{"title":""}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestDeleteProductEndpoint(t *testing.T) {
	t.Run("deletes product and returns 204", func(t *testing.T) {
		mux, service := newTestMux(t)
		if _, err := service.CreateProduct(context.Background(), "Desk Lamp", ""); err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}

		rec := doRequest(mux, http.MethodDelete, "/catalogue-api/products/1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}

		rec = doRequest(mux, http.MethodGet, "/catalogue-api/products/1", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected deleted product to 404, got %d", rec.Code)
		}
	})

	t.Run("returns 404 for missing product", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := doRequest(mux, http.MethodDelete, "/catalogue-api/products/99", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doRequest(mux, http.MethodPut, "/catalogue-api/products/1", `{}`)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
