package metaclient

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second

	// fração máxima de jitter somada ao backoff
	jitterFraction = 0.1
)

// RetryPolicy define quantas tentativas são feitas, quais status são
// retentados e quanto esperar entre uma tentativa e outra.
type RetryPolicy struct {
	MaxAttempts int
	IsRetryable func(statusCode int) bool
	Backoff     func(attempt int) time.Duration
}

// DefaultRetryPolicy retenta 429 e 5xx até 3 vezes com backoff exponencial
// base * 2^attempt mais até 10% de jitter.
func DefaultRetryPolicy(base time.Duration) RetryPolicy {
	if base <= 0 {
		base = DefaultBaseDelay
	}

	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		IsRetryable: IsRetryableStatus,
		Backoff:     ExponentialBackoff(base, rand.Float64),
	}
}

// ExponentialBackoff monta a função de espera. random deve retornar valores em [0, 1).
func ExponentialBackoff(base time.Duration, random func() float64) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		delay := float64(base) * math.Pow(2, float64(attempt))
		jitter := delay * jitterFraction * random()
		return time.Duration(delay + jitter)
	}
}

func IsRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts <= 0 {
		return 1
	}
	return p.MaxAttempts
}

func (p RetryPolicy) retryable(statusCode int) bool {
	if p.IsRetryable == nil {
		return IsRetryableStatus(statusCode)
	}
	return p.IsRetryable(statusCode)
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	if p.Backoff == nil {
		return 0
	}
	return p.Backoff(attempt)
}

// retryAfter interpreta o header Retry-After em segundos
func retryAfter(header http.Header) (time.Duration, bool) {
	value := strings.TrimSpace(header.Get("Retry-After"))
	if value == "" {
		return 0, false
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0, false
	}

	return time.Duration(seconds) * time.Second, true
}

// sleepContext espera d ou até o contexto ser cancelado
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
