package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sensorq/cli/internal/errors"
)

// HTTP implements the API over the backend's REST endpoint.
// One POST /query round trip per Ask call; the caller owns admission control
// and never issues overlapping submissions.
type HTTP struct {
	// origin is the base URL for all requests (e.g., "http://localhost:8000")
	origin string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// newHTTP creates a new HTTP client for the given backend origin.
func newHTTP(origin string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTP{
		origin: strings.TrimRight(origin, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// queryRequest is the wire shape of one submission.
type queryRequest struct {
	Query string `json:"query"`
}

// Ask calls POST /query with the question and decodes the answer.
// Any transport failure, non-2xx status, or undecodable body is returned as
// an error; the backend reports no structured detail beyond that.
func (h *HTTP) Ask(ctx context.Context, query string) (*Answer, error) {
	body, err := json.Marshal(queryRequest{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.origin+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.BackendUnreachable, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errors.BadStatus, fmt.Sprintf("backend returned status %d", resp.StatusCode))
	}

	var out Answer
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(errors.BadPayload, "decode answer", err)
	}
	return &out, nil
}
