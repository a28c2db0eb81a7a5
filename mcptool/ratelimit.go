package mcptool

import (
	"fmt"

	"golang.org/x/time/rate"
)

const (
	defaultRateLimit = 10
	defaultBurst     = 20
)

// limiter wraps a token bucket shared by all tools.
type limiter struct {
	bucket *rate.Limiter
}

func newLimiter(perSecond float64, burst int) *limiter {
	if perSecond <= 0 {
		perSecond = defaultRateLimit
	}
	if burst < 1 {
		burst = defaultBurst
	}
	return &limiter{bucket: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// check consumes one token, or returns an error naming the tool when the
// bucket is empty.
func (l *limiter) check(tool string) error {
	if !l.bucket.Allow() {
		return fmt.Errorf("rate limit exceeded for tool %q, please wait before retrying", tool)
	}
	return nil
}
