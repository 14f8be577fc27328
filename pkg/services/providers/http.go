package providers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ResponseError translates a non-2xx provider response into the package's
// error taxonomy. The body is not consumed.
func ResponseError(provider string, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthExpiredError{Provider: provider}
	case http.StatusTooManyRequests:
		return &RateLimitedError{RetryAfter: retryAfter(resp)}
	default:
		return fmt.Errorf("%s report request failed with status %d", provider, resp.StatusCode)
	}
}

func retryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
