package entities

import "time"

type Delivery struct {
	ID        int64
	OrderID   string
	DriverID  int64
	Pickup    Location
	Dropoff   Location
	Status    DeliveryStatusType
	CreatedAt time.Time
	Rating    *int
}

type DeliveryStatusType string

const (
	DeliveryAccepted   DeliveryStatusType = "accepted"
	DeliveryInProgress DeliveryStatusType = "in_progress"
	DeliveryCompleted  DeliveryStatusType = "completed"
	DeliveryFailed     DeliveryStatusType = "failed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, закрыта ли доставка (успешно или нет).
func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryCompleted || s == DeliveryFailed
}
