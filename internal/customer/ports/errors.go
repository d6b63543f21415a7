package ports

import (
	"errors"
	"fmt"
	"strings"
)

// The downstream error taxonomy. Every client call resolves to a value,
// ErrNotFound, a *ValidationError, or an *UnavailableError; callers branch
// with errors.Is/errors.As instead of inspecting transport details.

// ErrNotFound reports that the remote said the resource does not exist.
// Absence is not a failure: for a favourite marker it means "not
// favourited", for a product the orchestrator escalates it to a not-found
// page.
var ErrNotFound = errors.New("resource not found")

// ValidationError reports that a remote validator rejected the request.
// Messages keep the remote's order and wording; they are rendered to the
// user verbatim and never logged as application errors.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("remote validation failed: %s", strings.Join(e.Messages, "; "))
}

// UnavailableError reports that a downstream call could not produce a
// usable response: transport failure, timeout, or an unexpected status.
// The diagnostic is opaque to end users and surfaces only as a generic
// failure.
type UnavailableError struct {
	Operation string
	Err       error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: downstream unavailable: %v", e.Operation, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
