package eventchannel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"driversync/internal/entities"
	"driversync/pkg/logger"
	retrierconfig "driversync/pkg/retrier"
	"driversync/pkg/retrier/backoff_adapter"
)

// Машина состояний канала: Disconnected -> Connecting -> Connected,
// обратно в Connecting при обрыве соединения.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

const (
	DefaultConnectTimeout = 5 * time.Second

	reconnectInitialInterval = 500 * time.Millisecond
	reconnectMaxInterval     = 30 * time.Second
	reconnectRandomization   = 0.5
	reconnectMultiplier      = 2.0
)

var (
	ErrClosed       = errors.New("event channel is closed")
	ErrNotConnected = errors.New("event channel is not connected")
	ErrAlreadyOpen  = errors.New("event channel is already open")
)

type eventHandlers struct {
	newOrder       func(entities.Order)
	orderAccepted  func(entities.Delivery)
	orderCompleted func()
}

// Client поддерживает постоянный push-канал от dispatch-сервера.
// Гарантия доставки: не более одного вызова подписчика на каждый
// полученный кадр в рамках одной подключенной сессии; события,
// пропущенные в оффлайне, не реплеятся (их догоняет следующий fetch).
type Client struct {
	log     handlerLogger
	dialer  Dialer
	url     string
	timeout time.Duration

	mu       sync.Mutex
	writeMu  sync.Mutex
	state    State
	conn     Conn
	driverID int64
	handlers eventHandlers
	closed   bool

	runCtx    context.Context
	runCancel context.CancelFunc
	closeOnce sync.Once
}

func New(log handlerLogger, dialer Dialer, channelURL string, connectTimeout time.Duration) *Client {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}

	return &Client{
		log:     log,
		dialer:  dialer,
		url:     channelURL,
		timeout: connectTimeout,
		state:   StateDisconnected,
	}
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) OnNewOrder(fn func(entities.Order)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers.newOrder = fn
}

func (c *Client) OnOrderAccepted(fn func(entities.Delivery)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers.orderAccepted = fn
}

func (c *Client) OnOrderCompleted(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers.orderCompleted = fn
}

// Connect открывает канал для данного водителя. Инициализация обязана
// уложиться в connectTimeout, иначе вызов считается проваленным.
func (c *Client) Connect(ctx context.Context, driverID int64) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return ErrAlreadyOpen
	}
	c.state = StateConnecting
	c.driverID = driverID
	c.runCtx, c.runCancel = context.WithCancel(context.Background())
	c.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(dialCtx, c.endpoint(driverID))
	if err != nil {
		c.setState(StateDisconnected)
		return fmt.Errorf("event channel connect: %w", err)
	}

	if !c.install(conn) {
		_ = conn.Close()
		return ErrClosed
	}

	go c.readLoop(conn)
	return nil
}

// NotifyLocation - fire-and-forget уведомление о позиции.
func (c *Client) NotifyLocation(lat, lng float64) error {
	c.mu.Lock()
	conn := c.conn
	connected := c.state == StateConnected
	c.mu.Unlock()

	if !connected || conn == nil {
		return ErrNotConnected
	}

	payload, err := json.Marshal(locationPayload{
		Lat:       lat,
		Lng:       lng,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal location payload: %w", err)
	}

	raw, err := json.Marshal(frame{
		Type:          eventLocationUpdate,
		CorrelationID: uuid.NewString(),
		Payload:       payload,
	})
	if err != nil {
		return fmt.Errorf("marshal location frame: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.WriteMessage(textMessage, raw); err != nil {
		return fmt.Errorf("write location frame: %w", err)
	}
	return nil
}

// Close идемпотентен: гасит reconnect-цикл и закрывает соединение.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.state = StateDisconnected
		conn := c.conn
		c.conn = nil
		cancel := c.runCancel
		c.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		if conn != nil {
			err = conn.Close()
		}
	})
	return err
}

func (c *Client) readLoop(conn Conn) {
	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if c.isClosed() {
				return
			}

			c.log.Warn("event channel dropped, reconnecting",
				logger.NewField("error", err),
			)
			c.setState(StateConnecting)
			c.reconnect()
			return
		}

		if msgType != textMessage {
			continue
		}

		c.dispatch(payload)
	}
}

// reconnect крутит экспоненциальный backoff до успеха или Close.
// Канал никогда не остается молча в Disconnected после обрыва.
func (c *Client) reconnect() {
	retryConfig := retrierconfig.Config{
		InitialInterval: reconnectInitialInterval,
		MaxInterval:     reconnectMaxInterval,
		MaxElapsedTime:  0, // без предела: остановка только через Close
		Randomization:   reconnectRandomization,
		Multiplier:      reconnectMultiplier,
	}

	retry := backoff_adapter.New(retryConfig)

	var conn Conn
	err := retry.ExecuteWithContext(c.runCtx, func(ctx context.Context) error {
		ReconnectsTotal.Inc()

		dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var dialErr error
		conn, dialErr = c.dialer.DialContext(dialCtx, c.endpoint(c.driverID))
		return dialErr
	})
	if err != nil {
		// сюда попадаем только при отмене runCtx (teardown)
		c.setState(StateDisconnected)
		return
	}

	if !c.install(conn) {
		_ = conn.Close()
		return
	}

	c.log.Info("event channel reconnected")
	go c.readLoop(conn)
}

func (c *Client) dispatch(raw []byte) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		c.log.Warn("malformed event frame",
			logger.NewField("error", err),
		)
		return
	}

	EventsReceivedTotal.WithLabelValues(f.Type).Inc()

	c.mu.Lock()
	handlers := c.handlers
	c.mu.Unlock()

	switch f.Type {
	case EventNewOrder:
		var p orderPayload
		if err := json.Unmarshal(f.Payload, &p); err != nil {
			c.log.Warn("malformed new_order payload", logger.NewField("error", err))
			return
		}
		if handlers.newOrder != nil {
			handlers.newOrder(p.toDomain())
		}
	case EventOrderAccepted:
		var p deliveryPayload
		if err := json.Unmarshal(f.Payload, &p); err != nil {
			c.log.Warn("malformed order_accepted payload", logger.NewField("error", err))
			return
		}
		if handlers.orderAccepted != nil {
			handlers.orderAccepted(p.toDomain())
		}
	case EventOrderCompleted:
		if handlers.orderCompleted != nil {
			handlers.orderCompleted()
		}
	default:
		c.log.Debug("unknown event type, ignored",
			logger.NewField("type", f.Type),
		)
	}
}

func (c *Client) install(conn Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	c.conn = conn
	c.state = StateConnected
	return true
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state = s
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Client) endpoint(driverID int64) string {
	return c.url + "?driverId=" + strconv.FormatInt(driverID, 10)
}
