package dispatch

import (
	"driversync/internal/entities"
)

func toDomainDriver(dto *driverDTO) *entities.Driver {
	return &entities.Driver{
		ID:          dto.ID,
		Name:        dto.Name,
		Phone:       dto.Phone,
		Vehicle:     entities.VehicleType(dto.VehicleType),
		IsAvailable: dto.IsAvailable,
	}
}

func toDomainOrder(dto orderDTO) entities.Order {
	items := make([]entities.OrderItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, entities.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return entities.Order{
		ID:          dto.ID,
		Items:       items,
		Address:     dto.DeliveryAddress,
		TotalAmount: dto.TotalAmount,
		CreatedAt:   dto.CreatedAt,
	}
}

func toDomainOrderList(dtos []orderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomainOrder(dto))
	}
	return orders
}

func toDomainDelivery(dto *deliveryDTO) *entities.Delivery {
	return &entities.Delivery{
		ID:       dto.ID,
		OrderID:  dto.OrderID,
		DriverID: dto.DriverID,
		Pickup: entities.Location{
			Latitude:  dto.PickupLat,
			Longitude: dto.PickupLng,
		},
		Dropoff: entities.Location{
			Latitude:  dto.DropoffLat,
			Longitude: dto.DropoffLng,
		},
		Status:    entities.DeliveryStatusType(dto.Status),
		CreatedAt: dto.CreatedAt,
		Rating:    dto.Rating,
	}
}

func toDomainDeliveryList(dtos []deliveryDTO) []entities.Delivery {
	deliveries := make([]entities.Delivery, 0, len(dtos))
	for i := range dtos {
		deliveries = append(deliveries, *toDomainDelivery(&dtos[i]))
	}
	return deliveries
}

func toDomainAnalytics(dto *analyticsDTO) *entities.Analytics {
	weekly := make([]entities.DayStat, 0, len(dto.WeeklyStats))
	for _, stat := range dto.WeeklyStats {
		weekly = append(weekly, entities.DayStat{
			Day:        stat.Day,
			Deliveries: stat.Deliveries,
			Earnings:   stat.Earnings,
		})
	}

	ratings := make([]entities.RatingCount, 0, len(dto.RatingDistribution))
	for _, rc := range dto.RatingDistribution {
		ratings = append(ratings, entities.RatingCount{
			Rating: rc.Rating,
			Count:  rc.Count,
		})
	}

	return &entities.Analytics{
		WeeklyStats:        weekly,
		RatingDistribution: ratings,
		AverageRating:      dto.AverageRating,
	}
}
