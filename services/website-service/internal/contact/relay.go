package contact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultRelayURL is the form relay the site has always posted to.
const DefaultRelayURL = "https://formsubmit.co/marwan200406@gmail.com"

type Relay interface {
	Send(ctx context.Context, s Submission) error
}

// FormRelay posts submissions as a form. Success is any 2xx; there is no retry.
type FormRelay struct {
	endpoint   string
	httpClient *http.Client
}

func NewFormRelay(endpoint string, timeout time.Duration) *FormRelay {
	if endpoint == "" {
		endpoint = DefaultRelayURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FormRelay{endpoint: endpoint, httpClient: &http.Client{Timeout: timeout}}
}

func (r *FormRelay) Send(ctx context.Context, s Submission) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(s.Form().Encode()))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelayUnavailable, err)
	}
	defer resp.Body.Close()
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	}
	return nil
}
