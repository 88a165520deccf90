package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"shopping-path-service/internal/domain"
	"strings"
	"time"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// HTTPLayoutRepository fetches the layout artifact from the location the
// extraction pipeline publishes it to.
type HTTPLayoutRepository struct {
	session  *http.Client
	url      string
	profile  domain.StoreProfile
	backoff  time.Duration
	attempts int
}

func NewHTTPLayoutRepository(url string, profile domain.StoreProfile) (*HTTPLayoutRepository, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("layout url is empty")
	}

	return &HTTPLayoutRepository{
		session:  &http.Client{Timeout: 10 * time.Second},
		url:      url,
		profile:  profile,
		backoff:  200 * time.Millisecond,
		attempts: 4,
	}, nil
}

// Return every product location of the published artifact in document order.
func (h *HTTPLayoutRepository) ListProductLocations(ctx context.Context) ([]domain.ProductLocation, error) {
	resp, err := h.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch layout %q: %w", h.url, err)
	}
	defer resp.Body.Close()

	layout, err := ParseLayout(resp.Body, h.profile.SpecialCorridor)
	if err != nil {
		return nil, fmt.Errorf("fetch layout %q: %w", h.url, err)
	}

	return layout.Flatten(h.profile), nil
}

func (h *HTTPLayoutRepository) do(req *http.Request) (*http.Response, error) {
	resp, err := h.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429 and 5xx
// responses) using exponential backoff while respecting context cancellation.
func (h *HTTPLayoutRepository) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	backoff := h.backoff

	var lastErr error

	for attempt := 1; attempt <= h.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := h.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == h.attempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
