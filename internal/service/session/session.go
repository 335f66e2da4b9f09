package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"driversync/internal/entities"
	"driversync/internal/eventchannel"
	"driversync/internal/gateway/http/dispatch"
	"driversync/pkg/logger"
)

const analyticsRefreshTimeout = 10 * time.Second

// Session - единственная точка мутации состояния водительской сессии.
// Все изменения сериализуются мьютексом; упорядочивание независимых
// асинхронных операций решается счетчиком поколений: каждое меняющее
// состояние событие инкрементирует generation, и результат любого
// fetch применяется только если его поколение все еще актуально.
type Session struct {
	log     handlerLogger
	gateway DispatchGateway
	channel EventChannel

	mu              sync.Mutex
	driver          *entities.Driver
	currentLocation *entities.Location
	activeDelivery  *entities.Delivery
	nearbyOrders    []entities.Order
	history         []entities.Delivery
	analytics       *entities.Analytics
	loading         bool
	lastErr         error

	generation   uint64
	initializing bool
	initialized  bool
	closed       bool
	nearbyCancel context.CancelFunc

	baseCtx    context.Context
	baseCancel context.CancelFunc
}

func New(log handlerLogger, gateway DispatchGateway, channel EventChannel) *Session {
	baseCtx, baseCancel := context.WithCancel(context.Background())

	return &Session{
		log:        log,
		gateway:    gateway,
		channel:    channel,
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
	}
}

// Initialize открывает event channel, конкурентно загружает водителя и
// активную доставку и, если позиция известна, кандидатов поблизости.
// Повторный вызов при незавершенном первом отклоняется без мутаций.
func (s *Session) Initialize(ctx context.Context, driverID int64, initial *entities.Location) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.initializing {
		s.mu.Unlock()
		return ErrInitializeInFlight
	}
	s.initializing = true
	s.loading = true
	s.lastErr = nil
	if initial != nil {
		loc := *initial
		s.currentLocation = &loc
	}
	loc := s.currentLocation
	gen := s.generation
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.initializing = false
		s.mu.Unlock()
	}()

	// хендлеры регистрируем до подключения, чтобы не потерять первые кадры
	s.channel.OnNewOrder(s.handleNewOrder)
	s.channel.OnOrderAccepted(s.handleOrderAccepted)
	s.channel.OnOrderCompleted(s.handleOrderCompleted)

	if err := s.channel.Connect(ctx, driverID); err != nil && !errors.Is(err, eventchannel.ErrAlreadyOpen) {
		return s.failInitialize(fmt.Errorf("open event channel: %w", err))
	}

	var (
		driver *entities.Driver
		active *entities.Delivery
		nearby []entities.Order
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		driver, err = s.gateway.FetchDriver(groupCtx, driverID)
		if err != nil {
			return fmt.Errorf("fetch driver: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		active, err = s.gateway.FetchActiveDelivery(groupCtx, driverID)
		if err != nil {
			return fmt.Errorf("fetch active delivery: %w", err)
		}
		return nil
	})
	if loc != nil {
		lat, lng := loc.Latitude, loc.Longitude
		group.Go(func() error {
			var err error
			nearby, err = s.gateway.FetchNearbyOrders(groupCtx, driverID, lat, lng)
			if err != nil {
				return fmt.Errorf("fetch nearby orders: %w", err)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return s.failInitialize(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if ctx.Err() != nil {
		// отмененная инициализация не применяет результат
		s.loading = false
		return ctx.Err()
	}

	s.driver = driver
	if s.generation == gen {
		s.activeDelivery = active
		if nearby != nil {
			s.nearbyOrders = nearby
		}
	} else if s.activeDelivery != nil {
		// пока шла инициализация, push уже назначил доставку -
		// ответ сервера ее не перетирает
		s.driver.IsAvailable = false
	}

	s.initialized = true
	s.loading = false
	s.lastErr = nil
	return nil
}

// UpdateLocation сохраняет новую позицию, best-effort пушит ее на сервер
// и перечитывает кандидатов; устаревший fetch отменяется и не применяется.
func (s *Session) UpdateLocation(ctx context.Context, lat, lng float64) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}

	loc := entities.Location{
		Latitude:   lat,
		Longitude:  lng,
		CapturedAt: time.Now().UTC(),
	}
	// позицию кешируем даже до Initialize: она пригодится первому fetch
	s.currentLocation = &loc

	if s.driver == nil {
		s.mu.Unlock()
		return ErrDriverUnknown
	}
	driverID := s.driver.ID

	s.generation++
	gen := s.generation
	if s.nearbyCancel != nil {
		s.nearbyCancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.nearbyCancel = cancel
	s.mu.Unlock()

	if err := s.gateway.UpdateDriverLocation(ctx, driverID, lat, lng); err != nil && !isCancelled(err) {
		// пуш позиции никогда не валит сессию
		s.log.Warn("driver location push failed",
			logger.NewField("error", err),
		)
	}
	if err := s.channel.NotifyLocation(lat, lng); err != nil {
		s.log.Debug("location notify skipped",
			logger.NewField("error", err),
		)
	}

	orders, err := s.gateway.FetchNearbyOrders(fetchCtx, driverID, lat, lng)
	if err != nil {
		if isCancelled(err) || fetchCtx.Err() != nil {
			return nil // вытеснен более новой операцией
		}

		s.mu.Lock()
		if !s.closed && s.generation == gen {
			s.lastErr = err
		}
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || fetchCtx.Err() != nil || s.generation != gen {
		return nil
	}

	// список заменяется целиком, частичных слияний нет
	s.nearbyOrders = orders
	return nil
}

// AcceptOrder локально отклоняет заявку при активной доставке - без
// единого сетевого вызова. Conflict от сервера авторитетен: заказ ушел
// другому водителю и выбывает из кандидатов.
func (s *Session) AcceptOrder(ctx context.Context, orderID string, lat, lng float64) (*entities.Delivery, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if s.driver == nil {
		s.mu.Unlock()
		return nil, ErrDriverUnknown
	}
	if s.currentLocation == nil {
		s.mu.Unlock()
		return nil, ErrLocationUnknown
	}
	if s.activeDelivery != nil {
		s.mu.Unlock()
		return nil, ErrDeliveryInProgress
	}
	driverID := s.driver.ID
	s.mu.Unlock()

	delivery, err := s.gateway.AcceptOrder(ctx, driverID, orderID, lat, lng)
	if err != nil {
		if isCancelled(err) {
			return nil, err
		}

		if errors.Is(err, dispatch.ErrConflict) {
			s.mu.Lock()
			if !s.closed {
				s.removeNearbyLocked(orderID)
				s.generation++
			}
			s.mu.Unlock()
			return nil, err
		}

		s.mu.Lock()
		if !s.closed {
			s.lastErr = err
		}
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	s.activeDelivery = delivery
	s.removeNearbyLocked(orderID)
	s.driver.IsAvailable = false
	s.generation++
	if s.nearbyCancel != nil {
		s.nearbyCancel()
		s.nearbyCancel = nil
	}
	s.lastErr = nil
	return delivery, nil
}

// CompleteDelivery закрывает активную доставку. Успешное завершение
// требует proof image еще до сетевого вызова; после успеха запускается
// best-effort обновление аналитики, его отказ ничего не откатывает.
func (s *Session) CompleteDelivery(ctx context.Context, completed bool, notes string, proofImage []byte) (*entities.Delivery, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if s.activeDelivery == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveDelivery
	}
	if completed && len(proofImage) == 0 {
		s.mu.Unlock()
		return nil, ErrProofRequired
	}
	deliveryID := s.activeDelivery.ID
	s.mu.Unlock()

	updated, err := s.gateway.CompleteDelivery(ctx, deliveryID, completed, notes, proofImage)
	if err != nil {
		if isCancelled(err) {
			return nil, err
		}

		s.mu.Lock()
		if !s.closed {
			s.lastErr = err
		}
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if ctx.Err() != nil {
		s.mu.Unlock()
		return nil, ctx.Err()
	}

	s.activeDelivery = nil
	s.driver.IsAvailable = true
	s.history = append([]entities.Delivery{*updated}, s.history...)
	s.generation++
	s.lastErr = nil
	s.mu.Unlock()

	go s.refreshAnalyticsBestEffort()

	return updated, nil
}

// RefreshHistory - чистое перечитывание истории, не трогает остальные поля.
func (s *Session) RefreshHistory(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.driver == nil {
		s.mu.Unlock()
		return ErrDriverUnknown
	}
	driverID := s.driver.ID
	s.mu.Unlock()

	items, err := s.gateway.FetchHistory(ctx, driverID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.history = items
	return nil
}

// RefreshAnalytics - чистое перечитывание агрегатов, не трогает остальные поля.
func (s *Session) RefreshAnalytics(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.driver == nil {
		s.mu.Unlock()
		return ErrDriverUnknown
	}
	driverID := s.driver.ID
	s.mu.Unlock()

	analytics, err := s.gateway.FetchAnalytics(ctx, driverID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.analytics = analytics
	return nil
}

// PushCurrentLocation используется периодической задачей: пока доставка
// активна, раз в интервал отправляет позицию на сервер. Без активной
// доставки или известной позиции - no-op.
func (s *Session) PushCurrentLocation(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.driver == nil || s.activeDelivery == nil || s.currentLocation == nil {
		s.mu.Unlock()
		return nil
	}
	driverID := s.driver.ID
	lat := s.currentLocation.Latitude
	lng := s.currentLocation.Longitude
	s.mu.Unlock()

	if err := s.channel.NotifyLocation(lat, lng); err != nil {
		s.log.Debug("location notify skipped",
			logger.NewField("error", err),
		)
	}

	if err := s.gateway.UpdateDriverLocation(ctx, driverID, lat, lng); err != nil {
		if isCancelled(err) {
			return nil
		}
		return fmt.Errorf("push current location: %w", err)
	}
	return nil
}

// Close идемпотентно сворачивает сессию: гасит все незавершенные fetch,
// фоновые обновления и event channel.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.loading = false
	if s.nearbyCancel != nil {
		s.nearbyCancel()
		s.nearbyCancel = nil
	}
	s.mu.Unlock()

	s.baseCancel()
	return s.channel.Close()
}

func (s *Session) handleNewOrder(order entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for _, existing := range s.nearbyOrders {
		if existing.ID == order.ID {
			return // дедуп по id
		}
	}
	s.nearbyOrders = append(s.nearbyOrders, order)
	s.generation++
}

func (s *Session) handleOrderAccepted(delivery entities.Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.removeNearbyLocked(delivery.OrderID)
	s.generation++

	// чужая доставка только убирает заказ из кандидатов,
	// activeDelivery не трогаем
	if s.driver != nil && delivery.DriverID == s.driver.ID {
		d := delivery
		s.activeDelivery = &d
		s.driver.IsAvailable = false
	}
}

func (s *Session) handleOrderCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.driver != nil {
		s.driver.IsAvailable = true
	}
	s.generation++
}

func (s *Session) failInitialize(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	s.loading = false
	if isCancelled(err) {
		// Cancelled фильтруется на границе и не попадает в состояние
		return err
	}
	s.lastErr = err
	return err
}

func (s *Session) refreshAnalyticsBestEffort() {
	ctx, cancel := context.WithTimeout(s.baseCtx, analyticsRefreshTimeout)
	defer cancel()

	if err := s.RefreshAnalytics(ctx); err != nil && !isCancelled(err) {
		s.log.Warn("analytics refresh after completion failed",
			logger.NewField("error", err),
		)
	}
}

func (s *Session) removeNearbyLocked(orderID string) {
	for i, order := range s.nearbyOrders {
		if order.ID == orderID {
			s.nearbyOrders = append(s.nearbyOrders[:i], s.nearbyOrders[i+1:]...)
			return
		}
	}
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
