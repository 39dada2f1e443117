package lifecycle

import (
	"math"
	"time"
)

// RetryPolicy bounds automatic re-initialization after failures.
type RetryPolicy struct {
	MaxRetries    int
	BaseDelay     time.Duration
	BackoffFactor float64
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:    3,
		BaseDelay:     500 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

// Delay returns base_delay * backoff_factor^(errorCount-1).
func (p RetryPolicy) Delay(errorCount int) time.Duration {
	if errorCount < 1 {
		errorCount = 1
	}
	factor := p.BackoffFactor
	if factor < 1 {
		factor = 1
	}
	return time.Duration(float64(p.BaseDelay) * math.Pow(factor, float64(errorCount-1)))
}

// ShouldRetry reports whether another attempt fits in the budget.
func (p RetryPolicy) ShouldRetry(errorCount int) bool {
	return errorCount < p.MaxRetries
}
