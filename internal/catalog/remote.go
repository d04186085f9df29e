package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osint-atlas/atlas/internal/model"
)

var (
	ErrRequest    = errors.New("catalog request failed")
	ErrBadPayload = errors.New("catalog payload is not a tool list")
)

// RemoteSource fetches the catalog from a hosted PostgREST-style backend
// with a single fetch-all call.
type RemoteSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewRemoteSource creates a RemoteSource for the given backend.
func NewRemoteSource(baseURL, apiKey string) *RemoteSource {
	return &RemoteSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Tools retrieves all rows of the tool catalog. Any network error,
// non-success response or malformed payload is returned as an error; the
// caller decides on fallback.
func (r *RemoteSource) Tools(ctx context.Context) ([]model.Tool, error) {
	url := r.baseURL + "/rest/v1/tools?select=*"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequest, resp.StatusCode)
	}

	var tools []model.Tool
	if err := json.Unmarshal(body, &tools); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return tools, nil
}
