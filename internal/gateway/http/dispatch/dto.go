package dispatch

import "time"

type driverDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
	IsAvailable bool   `json:"is_available"`
}

type orderItemDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderDTO struct {
	ID              string         `json:"id"`
	Items           []orderItemDTO `json:"items"`
	DeliveryAddress string         `json:"delivery_address"`
	TotalAmount     float64        `json:"total_amount"`
	CreatedAt       time.Time      `json:"created_at"`
}

type deliveryDTO struct {
	ID         int64     `json:"id"`
	OrderID    string    `json:"order_id"`
	DriverID   int64     `json:"driver_id"`
	PickupLat  float64   `json:"pickup_lat"`
	PickupLng  float64   `json:"pickup_lng"`
	DropoffLat float64   `json:"dropoff_lat"`
	DropoffLng float64   `json:"dropoff_lng"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	Rating     *int      `json:"rating,omitempty"`
}

type dayStatDTO struct {
	Day        string  `json:"day"`
	Deliveries int     `json:"deliveries"`
	Earnings   float64 `json:"earnings"`
}

type ratingCountDTO struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type analyticsDTO struct {
	WeeklyStats        []dayStatDTO     `json:"weekly_stats"`
	RatingDistribution []ratingCountDTO `json:"rating_distribution"`
	AverageRating      float64          `json:"average_rating"`
}

type acceptOrderRequest struct {
	OrderID    string  `json:"orderId"`
	CurrentLat float64 `json:"currentLat"`
	CurrentLng float64 `json:"currentLng"`
}

type completeDeliveryRequest struct {
	Completed  bool   `json:"completed"`
	Notes      string `json:"notes"`
	ProofImage []byte `json:"proofImage,omitempty"`
}

type updateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
