package token_bucket

import (
	"sync"
	"time"
)

// Limiter отвечает на один вопрос: пропускаем запрос или нет.
type Limiter interface {
	Allow() bool
}

// TokenBucket - классический token bucket: ведро емкостью capacity
// пополняется со скоростью refillRate токенов в секунду, каждый
// пропущенный запрос забирает один токен.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()

	if b.tokens == 0 {
		return false
	}
	b.tokens--
	return true
}

// refill начисляет токены за время с последнего пополнения.
// lastRefill сдвигается только при начислении хотя бы одного целого
// токена, иначе дробные остатки терялись бы при частых вызовах.
func (b *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	earned := int(elapsed * b.refillRate)
	if earned == 0 {
		return
	}

	b.tokens += earned
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}
