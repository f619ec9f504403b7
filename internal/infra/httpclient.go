// README: Shared JSON API client for the content adapters; breaker-wrapped, timeout-bound.
package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// APIClient wraps an http.Client with a per-upstream circuit breaker and
// operator logging. Every adapter call goes through GetJSON so that a
// non-success status, a network error, or a malformed payload all surface as
// a plain error the adapter degrades to an empty result.
type APIClient struct {
	name    string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *logrus.Logger
}

// NewAPIClient builds a client for one upstream. timeout bounds each request
// in addition to whatever deadline the caller's context carries.
func NewAPIClient(name string, timeout time.Duration, log *logrus.Logger) *APIClient {
	return &APIClient{
		name: name,
		http: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    name,
			Timeout: 30 * time.Second,
		}),
		log: log,
	}
}

// GetJSON performs a GET against rawURL with the given query parameters and
// decodes the JSON body into out. An open breaker returns immediately with an
// error, which callers treat like any other upstream failure.
func (c *APIClient) GetJSON(ctx context.Context, rawURL string, query url.Values, out any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		u := rawURL
		if len(query) > 0 {
			u = rawURL + "?" + query.Encode()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "Activabot/1.0")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("%s: status %d", c.name, resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", c.name, err)
		}
		return nil, nil
	})
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"adapter": c.name,
			"url":     rawURL,
		}).WithError(err).Warn("upstream call failed")
	}
	return err
}
