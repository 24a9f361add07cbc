// Package httpclient provides the outbound HTTP stack used for the map
// provider: a retrying client and a circuit breaker, both usable wherever an
// HTTPClient is expected.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout:      10 * time.Second,
		MaxRetries:   2,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
	}
}

// NewHTTPClient returns a pooled *http.Client with cfg.Timeout.
func NewHTTPClient(cfg Config) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Transport: transport, Timeout: cfg.Timeout}
}

// RetryClient retries network errors and 5xx responses (except 501) with
// exponential backoff. Only requests without a body are safe to retry.
type RetryClient struct {
	client HTTPClient
	config Config
}

func NewRetryClient(client HTTPClient, cfg Config) *RetryClient {
	return &RetryClient{client: client, config: cfg}
}

func (c *RetryClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	var resp *http.Response
	var err error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := c.config.RetryWaitMin * time.Duration(1<<uint(attempt-1))
			if wait > c.config.RetryWaitMax {
				wait = c.config.RetryWaitMax
			}
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			if isRetryable(err) && attempt < c.config.MaxRetries {
				continue
			}
			return nil, fmt.Errorf("http request failed after %d attempts: %w", attempt+1, err)
		}

		if resp.StatusCode >= 500 && resp.StatusCode != http.StatusNotImplemented && attempt < c.config.MaxRetries {
			_ = resp.Body.Close()
			continue
		}
		return resp, nil
	}
	return resp, err
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
