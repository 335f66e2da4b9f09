package eventchannel

import (
	"context"

	"driversync/pkg/logger"
)

// Conn - минимальная поверхность websocket-соединения,
// чтобы reconnect-логика тестировалась без реальных сокетов.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type Dialer interface {
	DialContext(ctx context.Context, urlStr string) (Conn, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
