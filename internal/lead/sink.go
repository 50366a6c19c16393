package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Sink receives validated lead payloads.
type Sink interface {
	Submit(ctx context.Context, p Payload) error

	// Endpoint identifies the destination. An empty endpoint means the sink
	// is not configured.
	Endpoint() string
}

// DefaultHTTPTimeout bounds one submission request.
const DefaultHTTPTimeout = 15 * time.Second

// HTTPSink posts payloads to a spreadsheet-style web hook. The response is
// opaque: the body is discarded and the status is not interpreted, so only
// transport failures are reported.
type HTTPSink struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSink creates a sink for endpoint. A nil client gets one with
// DefaultHTTPTimeout.
func NewHTTPSink(endpoint string, client *http.Client) *HTTPSink {
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &HTTPSink{endpoint: endpoint, client: client}
}

// Endpoint returns the configured URL.
func (s *HTTPSink) Endpoint() string { return s.endpoint }

// Submit sends p as a JSON body labelled text/plain, as the web hook expects.
func (s *HTTPSink) Submit(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build lead request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post lead: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	slog.Debug("lead posted", "endpoint", s.endpoint, "status", resp.StatusCode)
	return nil
}
