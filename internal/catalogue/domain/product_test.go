package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dejobratic/shopfront/internal/catalogue/domain"
)

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name         string
		product      domain.Product
		wantMessages []string
	}{
		{
			name:    "valid product",
			product: domain.Product{Title: "Wireless Mouse", Details: "A mouse without wires"},
		},
		{
			name:    "valid product without details",
			product: domain.Product{Title: "Lamp"},
		},
		{
			name:    "title at minimum length",
			product: domain.Product{Title: "Pen"},
		},
		{
			name:    "title at maximum length",
			product: domain.Product{Title: strings.Repeat("a", 50)},
		},
		{
			name:         "missing title",
			product:      domain.Product{Details: "orphaned details"},
			wantMessages: []string{"title is required"},
		},
		{
			name:         "whitespace only title",
			product:      domain.Product{Title: "   "},
			wantMessages: []string{"title is required"},
		},
		{
			name:         "title too short",
			product:      domain.Product{Title: "ab"},
			wantMessages: []string{"title must be between 3 and 50 characters"},
		},
		{
			name:         "title too long",
			product:      domain.Product{Title: strings.Repeat("a", 51)},
			wantMessages: []string{"title must be between 3 and 50 characters"},
		},
		{
			name:         "details too long",
			product:      domain.Product{Title: "Lamp", Details: strings.Repeat("x", 1001)},
			wantMessages: []string{"details must be at most 1000 characters"},
		},
		{
			name:    "details at maximum length",
			product: domain.Product{Title: "Lamp", Details: strings.Repeat("x", 1000)},
		},
		{
			name:    "multi-byte title counted in runes",
			product: domain.Product{Title: "日本語"},
		},
		{
			name:    "multiple violations reported in order",
			product: domain.Product{Title: "ab", Details: strings.Repeat("x", 1001)},
			wantMessages: []string{
				"title must be between 3 and 50 characters",
				"details must be at most 1000 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()

			if len(tt.wantMessages) == 0 {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}

			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got: %v", err)
			}

			if len(validationErr.Messages) != len(tt.wantMessages) {
				t.Fatalf("expected %d messages, got %d: %v",
					len(tt.wantMessages), len(validationErr.Messages), validationErr.Messages)
			}

			for i, want := range tt.wantMessages {
				if validationErr.Messages[i] != want {
					t.Errorf("message %d: expected %q, got %q", i, want, validationErr.Messages[i])
				}
			}
		})
	}
}
