package session

import "driversync/internal/entities"

// UIState - взаимоисключающее производное состояние для слоя представления.
type UIState string

const (
	UIStateLoading UIState = "loading"
	UIStateError   UIState = "error"
	UIStateEmpty   UIState = "empty"
	UIStateReady   UIState = "ready"
)

// Snapshot - согласованная read-only копия состояния сессии.
// Слой представления читает только его и никогда не пишет в стор.
type Snapshot struct {
	Driver          *entities.Driver
	CurrentLocation *entities.Location
	ActiveDelivery  *entities.Delivery
	NearbyOrders    []entities.Order
	History         []entities.Delivery
	Analytics       *entities.Analytics
	Loading         bool
	Err             error
}

func (sn Snapshot) State() UIState {
	switch {
	case sn.Loading:
		return UIStateLoading
	case sn.Err != nil:
		return UIStateError
	case sn.ActiveDelivery == nil && len(sn.NearbyOrders) == 0:
		return UIStateEmpty
	default:
		return UIStateReady
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sn := Snapshot{
		Loading: s.loading,
		Err:     s.lastErr,
	}

	if s.driver != nil {
		driver := *s.driver
		sn.Driver = &driver
	}
	if s.currentLocation != nil {
		loc := *s.currentLocation
		sn.CurrentLocation = &loc
	}
	if s.activeDelivery != nil {
		delivery := *s.activeDelivery
		sn.ActiveDelivery = &delivery
	}
	if s.analytics != nil {
		analytics := *s.analytics
		sn.Analytics = &analytics
	}

	sn.NearbyOrders = make([]entities.Order, len(s.nearbyOrders))
	copy(sn.NearbyOrders, s.nearbyOrders)

	sn.History = make([]entities.Delivery, len(s.history))
	copy(sn.History, s.history)

	return sn
}
