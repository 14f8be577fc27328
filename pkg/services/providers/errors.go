package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoProviderLinked signals that no accounting connection exists for the
// caller.
var ErrNoProviderLinked = errors.New("no accounting provider linked")

// RateLimitedError reports an upstream 429. RetryAfter is zero when the
// response carried no delay.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider rate limited, retry after %s", e.RetryAfter)
	}
	return "provider rate limited"
}

// AuthExpiredError reports that the pre-provisioned credentials were
// rejected.
type AuthExpiredError struct {
	Provider string
}

func (e *AuthExpiredError) Error() string {
	return fmt.Sprintf("%s authorization expired", e.Provider)
}

func AsRateLimited(err error) (*RateLimitedError, bool) {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}

func IsAuthExpired(err error) bool {
	var ae *AuthExpiredError
	return errors.As(err, &ae)
}
