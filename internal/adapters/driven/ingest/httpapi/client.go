package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
	"github.com/custodia-labs/idms-console/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.IngestClient = (*Client)(nil)

// ingestPath is the ingest endpoint relative to the base URL.
const ingestPath = "/ingest"

// Client uploads documents to the ingest service.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates an ingest client for baseURL.
// A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		http:    client,
		baseURL: baseURL,
	}
}

// BaseURL returns the ingest service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ingestResponse is the wire form of a routed document.
type ingestResponse struct {
	PredictedLabel *string  `json:"predicted_label"`
	Probability    *float64 `json:"probability"`
	RouteTo        *string  `json:"route_to"`
	StoredAt       *string  `json:"stored_at"`
	Note           string   `json:"note"`
}

// Ingest posts the file and returns the routed document.
func (c *Client) Ingest(ctx context.Context, file domain.UploadFile) (*domain.RoutedDocument, error) {
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrUploadFailed, file.Path, err)
	}

	head := content
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	contentType := detectContentType(head)

	logger.Debug("POST %s%s (%s, %d bytes, %s)", c.baseURL, ingestPath, file.Name, len(content), contentType)

	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartField("file", file.Name, contentType, bytes.NewReader(content)).
		Post(ingestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUploadFailed, resp.StatusCode(), snippet(resp.Body()))
	}

	return decodeRoutedDocument(resp.Body())
}

// decodeRoutedDocument parses a success body. A body missing any of the
// routed document fields is not a routed document. Probability is passed
// through unchecked and a route outside the department set, empty included,
// is quarantined as unrouted.
func decodeRoutedDocument(body []byte) (*domain.RoutedDocument, error) {
	var wire ingestResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", domain.ErrUploadFailed, err)
	}

	var missing []string
	if wire.PredictedLabel == nil {
		missing = append(missing, "predicted_label")
	}
	if wire.RouteTo == nil {
		missing = append(missing, "route_to")
	}
	if wire.StoredAt == nil {
		missing = append(missing, "stored_at")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: response missing %s", domain.ErrUploadFailed, strings.Join(missing, ", "))
	}
	dep, err := domain.ParseDepartment(*wire.RouteTo)
	if err != nil {
		logger.Debug("quarantining route %q: %v", *wire.RouteTo, err)
	}

	return &domain.RoutedDocument{
		PredictedLabel: *wire.PredictedLabel,
		Probability:    wire.Probability,
		RouteTo:        dep,
		RawRouteTo:     *wire.RouteTo,
		StoredAt:       *wire.StoredAt,
		Note:           wire.Note,
	}, nil
}

// snippet returns the start of a body for error messages.
func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
