package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dejobratic/shopfront/internal/customer/ports"
)

// translate maps a completed downstream response onto the client error
// taxonomy. It is the single place transport outcomes become typed
// results; all three downstream clients go through it so the mapping
// cannot drift between them.
//
//   - 2xx: nil, body left unread for the caller to decode
//   - 404: ports.ErrNotFound (absence, not failure)
//   - 400 with a decodable {"errors": [...]} body: *ports.ValidationError
//     carrying the messages in the remote's order, verbatim
//   - anything else, including a 400 without a recognizable errors array:
//     *ports.UnavailableError with an opaque diagnostic
func translate(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, ports.ErrNotFound)

	case http.StatusBadRequest:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &ports.UnavailableError{Operation: op, Err: fmt.Errorf("read error response: %w", err)}
		}

		var rejection struct {
			Errors []string `json:"errors"`
		}
		if err := json.Unmarshal(body, &rejection); err == nil && rejection.Errors != nil {
			return &ports.ValidationError{Messages: rejection.Errors}
		}

		return &ports.UnavailableError{Operation: op, Err: fmt.Errorf("unexpected status 400: %s", body)}

	default:
		return &ports.UnavailableError{Operation: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
}
