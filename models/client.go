package models

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Reservation Service Client
//
// The site does not own any data — reservations and newsletter signups go
// to the remote reservation service as JSON over plain request/response.
// Two failure kinds matter to callers:
//   - *ServiceError: the service answered non-2xx with an {error} body.
//     The message is meant for the guest and is surfaced verbatim.
//   - anything else (dial failure, malformed body): a transport failure,
//     serr-wrapped. Handlers degrade to a fallback message; there is no
//     automatic retry.
// ============================================================================

// requestTimeout bounds each call to the service; the client sets no
// other deadline and never retries.
const requestTimeout = 30 * time.Second

// ServiceClient talks to the reservation service.
type ServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewServiceClient creates a client for the service at baseURL.
func NewServiceClient(baseURL string) *ServiceClient {
	return &ServiceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// ServiceError is a structured error response from the service.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service responded %d: %s", e.Status, e.Message)
}

// CreateReservation submits a reservation and returns the service's
// confirmation message.
func (sc *ServiceClient) CreateReservation(ctx context.Context, req ReservationRequest) (string, error) {
	data, err := sc.postJSON(ctx, "/api/reservations", req)
	if err != nil {
		return "", err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", serr.Wrap(err, "failed to decode reservation response")
	}
	return out.Message, nil
}

// SubscribeNewsletter signs an email up for the newsletter. The success
// body carries nothing the site needs, so only the error matters.
func (sc *ServiceClient) SubscribeNewsletter(ctx context.Context, email string) error {
	_, err := sc.postJSON(ctx, "/api/newsletter", map[string]string{"email": email})
	return err
}

// postJSON sends one JSON request and returns the raw success body.
func (sc *ServiceClient) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, serr.Wrap(err, "failed to encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sc.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, serr.Wrap(err, "failed to build service request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := sc.httpClient.Do(req)
	if err != nil {
		return nil, serr.Wrap(err, "request to reservation service failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read service response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &e); err != nil || e.Error == "" {
			// Non-2xx without a readable error body counts as a
			// transport failure, not a structured error
			return nil, serr.New("unexpected response from reservation service: " + resp.Status)
		}
		return nil, &ServiceError{Status: resp.StatusCode, Message: e.Error}
	}

	return data, nil
}
