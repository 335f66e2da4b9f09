package retrier

import (
	"context"
	"time"
)

// Retrier повторяет fn до успеха или исчерпания попыток.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration

	// MaxElapsedTime = 0 означает повторять бесконечно.
	MaxElapsedTime time.Duration

	Randomization float64
	Multiplier    float64

	// nil - повторяются все ошибки; иначе только те, где функция вернула true.
	ShouldRetry ShouldRetryFunc
}
