package session_get

import (
	"encoding/json"
	"net/http"
	"time"

	"driversync/internal/entities"
	"driversync/pkg/logger"
)

type driverDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
	IsAvailable bool   `json:"is_available"`
}

type locationDTO struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

type orderItemDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderDTO struct {
	ID          string         `json:"id"`
	Items       []orderItemDTO `json:"items"`
	Address     string         `json:"address"`
	TotalAmount float64        `json:"total_amount"`
	CreatedAt   time.Time      `json:"created_at"`
}

type deliveryDTO struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	DriverID  int64     `json:"driver_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Rating    *int      `json:"rating,omitempty"`
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

type snapshotResponse struct {
	State           string        `json:"state"`
	Error           string        `json:"error,omitempty"`
	Driver          *driverDTO    `json:"driver,omitempty"`
	CurrentLocation *locationDTO  `json:"current_location,omitempty"`
	ActiveDelivery  *deliveryDTO  `json:"active_delivery,omitempty"`
	NearbyOrders    []orderDTO    `json:"nearby_orders"`
	History         []deliveryDTO `json:"history"`
	Analytics       *analyticsDTO `json:"analytics,omitempty"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Snapshot()

	response := snapshotResponse{
		State:        string(snapshot.State()),
		NearbyOrders: toOrderDTOList(snapshot.NearbyOrders),
		History:      toDeliveryDTOList(snapshot.History),
	}
	if snapshot.Err != nil {
		response.Error = snapshot.Err.Error()
	}
	if snapshot.Driver != nil {
		response.Driver = &driverDTO{
			ID:          snapshot.Driver.ID,
			Name:        snapshot.Driver.Name,
			Phone:       snapshot.Driver.Phone,
			VehicleType: snapshot.Driver.Vehicle.String(),
			IsAvailable: snapshot.Driver.IsAvailable,
		}
	}
	if snapshot.CurrentLocation != nil {
		response.CurrentLocation = &locationDTO{
			Latitude:   snapshot.CurrentLocation.Latitude,
			Longitude:  snapshot.CurrentLocation.Longitude,
			Accuracy:   snapshot.CurrentLocation.Accuracy,
			CapturedAt: snapshot.CurrentLocation.CapturedAt,
		}
	}
	if snapshot.ActiveDelivery != nil {
		dto := toDeliveryDTO(*snapshot.ActiveDelivery)
		response.ActiveDelivery = &dto
	}
	if snapshot.Analytics != nil {
		response.Analytics = toAnalyticsDTO(*snapshot.Analytics)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTOList(orders []entities.Order) []orderDTO {
	dtos := make([]orderDTO, 0, len(orders))
	for _, order := range orders {
		items := make([]orderItemDTO, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, orderItemDTO{
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
		dtos = append(dtos, orderDTO{
			ID:          order.ID,
			Items:       items,
			Address:     order.Address,
			TotalAmount: order.TotalAmount,
			CreatedAt:   order.CreatedAt,
		})
	}
	return dtos
}

func toDeliveryDTO(delivery entities.Delivery) deliveryDTO {
	return deliveryDTO{
		ID:        delivery.ID,
		OrderID:   delivery.OrderID,
		DriverID:  delivery.DriverID,
		Status:    delivery.Status.String(),
		CreatedAt: delivery.CreatedAt,
		Rating:    delivery.Rating,
	}
}

func toDeliveryDTOList(deliveries []entities.Delivery) []deliveryDTO {
	dtos := make([]deliveryDTO, 0, len(deliveries))
	for _, delivery := range deliveries {
		dtos = append(dtos, toDeliveryDTO(delivery))
	}
	return dtos
}

func toAnalyticsDTO(analytics entities.Analytics) *analyticsDTO {
	dto := &analyticsDTO{
		WeeklyStats:        make([]dayStatDTO, 0, len(analytics.WeeklyStats)),
		RatingDistribution: make([]ratingCountDTO, 0, len(analytics.RatingDistribution)),
		AverageRating:      analytics.AverageRating,
	}
	for _, stat := range analytics.WeeklyStats {
		dto.WeeklyStats = append(dto.WeeklyStats, dayStatDTO{
			Day:        stat.Day,
			Deliveries: stat.Deliveries,
			Earnings:   stat.Earnings,
		})
	}
	for _, rc := range analytics.RatingDistribution {
		dto.RatingDistribution = append(dto.RatingDistribution, ratingCountDTO{
			Rating: rc.Rating,
			Count:  rc.Count,
		})
	}
	return dto
}
