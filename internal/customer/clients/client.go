package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dejobratic/shopfront/internal/customer/ports"
)

// SubjectHeader carries the caller's opaque subject id to the feedback
// service. The customer app forwards it verbatim and never inspects it.
const SubjectHeader = "X-Subject"

// apiClient is the plumbing shared by all downstream clients: one
// http.Client per backend base URL, owned for the process lifetime, plus a
// bounded per-call timeout. There are no retries; a timeout is an
// unavailability like any other.
type apiClient struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
}

func newAPIClient(httpClient *http.Client, baseURL string, timeout time.Duration) apiClient {
	return apiClient{http: httpClient, baseURL: baseURL, timeout: timeout}
}

// do performs one round trip and resolves it through the shared
// translator. When out is non-nil the 2xx body is decoded into it.
func (c *apiClient) do(ctx context.Context, op, method, path, subject string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &ports.UnavailableError{Operation: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return &ports.UnavailableError{Operation: op, Err: fmt.Errorf("build request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if subject != "" {
		req.Header.Set(SubjectHeader, subject)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ports.UnavailableError{Operation: op, Err: err}
	}
	defer resp.Body.Close()

	if err := translate(op, resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &ports.UnavailableError{Operation: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	return nil
}
