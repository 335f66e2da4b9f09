package sampler

import (
	"context"

	"driversync/internal/entities"
	"driversync/pkg/logger"
)

// Source - инжектируемый непрерывный поток позиций устройства.
// Тесты подставляют детерминированный источник вместо реального сенсора.
type Source interface {
	Subscribe(onSample func(entities.Location), onErr func(error)) (stop func(), err error)
}

// Sink принимает принятые (не отброшенные троттлингом) позиции.
type Sink interface {
	UpdateLocation(ctx context.Context, lat, lng float64) error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
