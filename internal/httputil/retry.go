// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by outbound clients.
package httputil

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay is the first back-off wait after an HTTP 429. Tests
// override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// maxBackoff caps a single wait, including server-supplied Retry-After values.
const maxBackoff = time.Minute

// DoWithRetry executes req and, when maxRetries > 0, retries HTTP 429
// responses with exponential back-off (RetryBaseDelay, doubled per attempt)
// or the server's Retry-After seconds when present.
//
// maxRetries <= 0 performs exactly one attempt. Transport errors and every
// status other than 429 are returned immediately. After the last retry the
// final 429 response is returned for the caller to inspect. A cancelled
// context during a wait returns ctx.Err().
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff(attempt, resp.Header.Get("Retry-After"))
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func backoff(attempt int, retryAfter string) time.Duration {
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		return min(time.Duration(secs)*time.Second, maxBackoff)
	}
	return min(RetryBaseDelay<<attempt, maxBackoff)
}
