// Package obs implements build service access over the Open Build Service REST API.
package obs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultMaxAttempts bounds how often a read is sent while the server keeps failing.
	DefaultMaxAttempts = 10
	// DefaultRetryDelay is the fixed wait between two attempts of a read.
	DefaultRetryDelay = time.Second

	httpClientTimeout = 5 * time.Minute
)

// Credentials authenticate against the API with HTTP basic auth.
type Credentials struct {
	User     string
	Password string
}

// Transport implements ports.Remote over HTTP.
type Transport struct {
	baseURL     string
	credentials Credentials
	httpClient  *http.Client
	clock       clockwork.Clock
	logger      ports.Logger

	// MaxAttempts bounds the number of times a read is sent.
	MaxAttempts int
	// RetryDelay is the wait before repeating a read that failed with a server error.
	RetryDelay time.Duration
}

// NewTransport creates a Transport for the API rooted at baseURL.
func NewTransport(baseURL string, creds Credentials, logger ports.Logger) *Transport {
	return NewTransportWithClient(baseURL, creds, logger, &http.Client{Timeout: httpClientTimeout}, clockwork.NewRealClock())
}

// NewTransportWithClient creates a Transport with a custom http client and clock.
func NewTransportWithClient(
	baseURL string,
	creds Credentials,
	logger ports.Logger,
	client *http.Client,
	clock clockwork.Clock,
) *Transport {
	return &Transport{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: creds,
		httpClient:  client,
		clock:       clock,
		logger:      logger,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// Get reads res, repeating the request after RetryDelay while the server
// answers with a 5xx status, at most MaxAttempts times.
func (t *Transport) Get(ctx context.Context, res domain.Resource) ([]byte, error) {
	attempts := max(t.MaxAttempts, 1)

	for attempt := 1; ; attempt++ {
		body, status, err := t.do(ctx, http.MethodGet, res, nil)
		if err != nil {
			return nil, err
		}
		if !isServerError(status) {
			if err := statusError(res, status); err != nil {
				return nil, err
			}
			return body, nil
		}

		if attempt >= attempts {
			exhausted := zerr.With(zerr.Wrap(domain.ErrRemoteRetriesExhausted, "giving up on "+res.String()), "resource", res.String())
			exhausted = zerr.With(exhausted, "status_code", status)
			return nil, zerr.With(exhausted, "attempts", attempt)
		}

		t.logger.Warn(fmt.Sprintf("Retrying %s (status %d, attempt %d/%d)", res, status, attempt, attempts))
		if err := t.wait(ctx); err != nil {
			return nil, err
		}
	}
}

// Put overwrites res with data.
func (t *Transport) Put(ctx context.Context, res domain.Resource, data []byte) error {
	_, status, err := t.do(ctx, http.MethodPut, res, data)
	if err != nil {
		return err
	}
	return statusError(res, status)
}

// Delete removes res.
func (t *Transport) Delete(ctx context.Context, res domain.Resource) error {
	_, status, err := t.do(ctx, http.MethodDelete, res, nil)
	if err != nil {
		return err
	}
	return statusError(res, status)
}

func (t *Transport) wait(ctx context.Context) error {
	if t.RetryDelay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.clock.After(t.RetryDelay):
		return nil
	}
}

func (t *Transport) do(ctx context.Context, method string, res domain.Resource, data []byte) ([]byte, int, error) {
	var body io.Reader = http.NoBody
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+res.String(), body)
	if err != nil {
		return nil, 0, requestError(err, method, res)
	}
	if t.credentials.User != "" {
		req.SetBasicAuth(t.credentials.User, t.credentials.Password)
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/octet-stream")
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, 0, requestError(err, method, res)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, requestError(err, method, res)
	}
	return payload, resp.StatusCode, nil
}

func requestError(err error, method string, res domain.Resource) error {
	failed := zerr.Wrap(domain.ErrRemoteRequestFailed, fmt.Sprintf("%s %s: %v", method, res, err))
	failed = zerr.With(failed, "resource", res.String())
	return zerr.With(failed, "method", method)
}

// statusError maps a response status to the domain error taxonomy.
func statusError(res domain.Resource, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return zerr.With(zerr.Wrap(domain.ErrRemoteNotFound, res.String()), "resource", res.String())
	default:
		failed := zerr.Wrap(domain.ErrRemoteRequestFailed, fmt.Sprintf("%s: HTTP %d", res, status))
		failed = zerr.With(failed, "resource", res.String())
		return zerr.With(failed, "status_code", status)
	}
}

func isServerError(status int) bool {
	return status >= 500 && status <= 599
}

var _ ports.Remote = (*Transport)(nil)
