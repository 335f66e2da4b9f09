package eventchannel

import (
	"encoding/json"
	"time"

	"driversync/internal/entities"
)

const (
	EventNewOrder       = "new_order"
	EventOrderAccepted  = "order_accepted"
	EventOrderCompleted = "order_completed"

	// исходящее fire-and-forget уведомление
	eventLocationUpdate = "location_update"
)

type frame struct {
	Type          string          `json:"type"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

type orderItemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderPayload struct {
	ID              string             `json:"id"`
	Items           []orderItemPayload `json:"items"`
	DeliveryAddress string             `json:"delivery_address"`
	TotalAmount     float64            `json:"total_amount"`
	CreatedAt       time.Time          `json:"created_at"`
}

type deliveryPayload struct {
	ID         int64     `json:"id"`
	OrderID    string    `json:"order_id"`
	DriverID   int64     `json:"driver_id"`
	PickupLat  float64   `json:"pickup_lat"`
	PickupLng  float64   `json:"pickup_lng"`
	DropoffLat float64   `json:"dropoff_lat"`
	DropoffLng float64   `json:"dropoff_lng"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type locationPayload struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

func (p orderPayload) toDomain() entities.Order {
	items := make([]entities.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, entities.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return entities.Order{
		ID:          p.ID,
		Items:       items,
		Address:     p.DeliveryAddress,
		TotalAmount: p.TotalAmount,
		CreatedAt:   p.CreatedAt,
	}
}

func (p deliveryPayload) toDomain() entities.Delivery {
	return entities.Delivery{
		ID:       p.ID,
		OrderID:  p.OrderID,
		DriverID: p.DriverID,
		Pickup: entities.Location{
			Latitude:  p.PickupLat,
			Longitude: p.PickupLng,
		},
		Dropoff: entities.Location{
			Latitude:  p.DropoffLat,
			Longitude: p.DropoffLng,
		},
		Status:    entities.DeliveryStatusType(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
