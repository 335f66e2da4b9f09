package location_push

import (
	"context"
	"time"
)

const DefaultInterval = 15 * time.Second

type Service interface {
	PushCurrentLocation(ctx context.Context) error
}

// LocationPush периодически отправляет текущую позицию на сервер, пока
// доставка активна. Ошибки логирует background worker; сессию они не валят.
type LocationPush struct {
	service  Service
	interval time.Duration
}

func New(service Service, interval time.Duration) *LocationPush {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &LocationPush{
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (l *LocationPush) TTL() time.Duration {
	return l.interval
}

// Do выполняет логику задачи.
func (l *LocationPush) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	return l.service.PushCurrentLocation(ctxWithTimeout)
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (l *LocationPush) Info() string {
	return "driver location push"
}
