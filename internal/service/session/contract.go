//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"driversync/internal/entities"
	"driversync/pkg/logger"
)

type DispatchGateway interface {
	FetchDriver(ctx context.Context, driverID int64) (*entities.Driver, error)
	FetchNearbyOrders(ctx context.Context, driverID int64, lat, lng float64) ([]entities.Order, error)
	// FetchActiveDelivery возвращает (nil, nil), когда активной доставки нет.
	FetchActiveDelivery(ctx context.Context, driverID int64) (*entities.Delivery, error)
	AcceptOrder(ctx context.Context, driverID int64, orderID string, lat, lng float64) (*entities.Delivery, error)
	CompleteDelivery(ctx context.Context, deliveryID int64, completed bool, notes string, proofImage []byte) (*entities.Delivery, error)
	FetchHistory(ctx context.Context, driverID int64) ([]entities.Delivery, error)
	FetchAnalytics(ctx context.Context, driverID int64) (*entities.Analytics, error)
	UpdateDriverLocation(ctx context.Context, driverID int64, lat, lng float64) error
}

type EventChannel interface {
	// Connect обязан уложиться в свой таймаут; повторный вызов по уже
	// открытому каналу возвращает eventchannel.ErrAlreadyOpen.
	Connect(ctx context.Context, driverID int64) error
	OnNewOrder(fn func(entities.Order))
	OnOrderAccepted(fn func(entities.Delivery))
	OnOrderCompleted(fn func())
	NotifyLocation(lat, lng float64) error
	Close() error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
