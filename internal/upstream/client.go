// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package upstream contains the clients for the third-party APIs the
// site aggregates: Artsy, the Art Institute of Chicago, Wikipedia,
// Ticketmaster Discovery, and Google Geocoding. Every client shares the
// same resilient transport: per-service circuit breaker, outbound rate
// limiter, and bounded response reads.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/artscout/artscout/internal/logging"
	"github.com/artscout/artscout/internal/metrics"
)

// maxResponseBody caps how much of an upstream response is read. The
// largest legitimate payloads (Ticketmaster week feeds) stay well under
// this.
const maxResponseBody = 4 << 20 // 4MB

// outcome labels for upstream metrics.
const (
	outcomeSuccess     = "success"
	outcomeError       = "error"
	outcomeOpenCircuit = "open_circuit"
)

// client is the shared transport for one upstream service. Each service
// gets its own breaker and limiter so one flaky API cannot starve the
// others.
type client struct {
	service string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// newClient builds the resilient transport for a named service.
// The breaker opens at a 60% failure rate over at least 10 requests and
// probes again after 30 seconds.
func newClient(service string, timeout time.Duration, rps float64) *client {
	if rps <= 0 {
		rps = 5
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        service,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("service", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("upstream circuit state change")
		},
	})

	return &client{
		service: service,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		breaker: breaker,
	}
}

// getJSON performs a rate-limited GET through the circuit breaker and
// decodes the JSON response into result.
func (c *client) getJSON(ctx context.Context, reqURL string, header http.Header, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limiter: %w", c.service, err)
	}

	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx, reqURL, header)
	})
	duration := time.Since(start)

	if err != nil {
		outcome := outcomeError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = outcomeOpenCircuit
		}
		metrics.RecordUpstreamRequest(c.service, outcome, duration)
		return fmt.Errorf("%s: %w", c.service, err)
	}
	metrics.RecordUpstreamRequest(c.service, outcomeSuccess, duration)

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.service, err)
	}
	return nil
}

// fetch issues the HTTP request and returns the bounded response body.
func (c *client) fetch(ctx context.Context, reqURL string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}
