package domain

import (
	"strings"
	"unicode/utf8"
)

// Product is a catalogue entry managed by the catalogue service.
type Product struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

// ValidationError carries the ordered, caller-correctable messages for a
// rejected payload. Message order is part of the API contract.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Validate ensures the product adheres to catalogue constraints.
func (p Product) Validate() error {
	var messages []string

	title := strings.TrimSpace(p.Title)
	if title == "" {
		messages = append(messages, "title is required")
	} else if utf8.RuneCountInString(title) < 3 || utf8.RuneCountInString(title) > 50 {
		messages = append(messages, "title must be between 3 and 50 characters")
	}

	if utf8.RuneCountInString(p.Details) > 1000 {
		messages = append(messages, "details must be at most 1000 characters")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}
