package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Review is a customer's opinion about a product. Reviews are append-only;
// there is no edit or delete.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID int       `json:"productId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"review"`
	AuthorID  string    `json:"authorId"`
}

// ValidationError carries the ordered, caller-correctable messages for a
// rejected payload. Message order is part of the API contract.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewReview validates the payload and mints a review with a fresh ID.
func NewReview(productID, rating int, text, authorID string) (*Review, error) {
	var messages []string

	if productID < 1 {
		messages = append(messages, "productId must be a positive integer")
	}
	if rating < 1 || rating > 5 {
		messages = append(messages, "rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(text) > 1000 {
		messages = append(messages, "review must be at most 1000 characters")
	}

	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	return &Review{
		ID:        uuid.New(),
		ProductID: productID,
		Rating:    rating,
		Text:      text,
		AuthorID:  authorID,
	}, nil
}
