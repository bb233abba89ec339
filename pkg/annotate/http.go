package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// HTTPClient talks to an external annotation service over JSON/HTTP.
// The service receives {"text": ...} on POST <base>/annotate and answers
// with the Annotation contract.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClientParams contains configuration for creating an HTTPClient.
type NewHTTPClientParams struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPClient creates a client for the annotation sidecar at BaseURL.
// When Timeout is zero a 30 second default applies.
func NewHTTPClient(params NewHTTPClientParams) *HTTPClient {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type annotateRequest struct {
	Text string `json:"text"`
}

// Annotate sends text to the annotation service and decodes the response.
func (c *HTTPClient) Annotate(ctx context.Context, text string) (*Annotation, error) {
	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode annotation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/annotate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create annotation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("annotation service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("annotation service returned %d: %s", resp.StatusCode, string(payload))
	}

	var annotation Annotation
	if err := json.NewDecoder(resp.Body).Decode(&annotation); err != nil {
		return nil, fmt.Errorf("failed to decode annotation response: %w", err)
	}

	return &annotation, nil
}
