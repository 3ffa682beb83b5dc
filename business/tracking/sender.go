package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"starryNight/domain"
)

// HTTPSender posts batches to the collector endpoint as
// {"events": [...]}. Any non-2xx response counts as a failed delivery.
type HTTPSender struct {
	client *http.Client
	url    string
}

func NewHTTPSender(url string, timeout time.Duration) *HTTPSender {
	return &HTTPSender{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

type batchPayload struct {
	Events []domain.UserEvent `json:"events"`
}

func (s *HTTPSender) Send(ctx context.Context, events []domain.UserEvent) error {
	body, err := json.Marshal(batchPayload{Events: events})
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("collector responded with status %d", resp.StatusCode)
	}

	return nil
}
