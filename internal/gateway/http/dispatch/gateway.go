package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"driversync/internal/entities"
	retrierconfig "driversync/pkg/retrier"
	"driversync/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "dispatch-api"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	maxErrorBodyBytes = 4 << 10
)

// Gateway - stateless request/response обертка над удаленным dispatch API.
// Идемпотентные вызовы проходят через retrier; POST accept/complete
// не ретраятся никогда (повтор может задвоить claim).
type Gateway struct {
	client  httpDoer
	baseURL string
	retrier retrier
}

func New(client httpDoer, baseURL string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) FetchDriver(ctx context.Context, driverID int64) (*entities.Driver, error) {
	var dto driverDTO

	err := g.executeWithMetrics(ctx, "FetchDriver", true, func(ctx context.Context) error {
		return g.call(ctx, http.MethodGet, fmt.Sprintf("/driver/%d", driverID), nil, nil, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway dispatch, fetch driver %d: %w", driverID, err)
	}

	return toDomainDriver(&dto), nil
}

func (g *Gateway) FetchNearbyOrders(ctx context.Context, driverID int64, lat, lng float64) ([]entities.Order, error) {
	query := url.Values{}
	query.Set("driverId", strconv.FormatInt(driverID, 10))
	query.Set("lat", formatCoord(lat))
	query.Set("lng", formatCoord(lng))

	var dtos []orderDTO

	err := g.executeWithMetrics(ctx, "FetchNearbyOrders", true, func(ctx context.Context) error {
		return g.call(ctx, http.MethodGet, "/orders/nearby", query, nil, &dtos)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway dispatch, fetch nearby orders: %w", err)
	}

	// отсутствие кандидатов - не ошибка, сервер отдает пустой список
	return toDomainOrderList(dtos), nil
}

// FetchActiveDelivery возвращает (nil, nil), когда активной доставки нет:
// серверный 404 здесь - легитимное пустое состояние, а не сбой.
func (g *Gateway) FetchActiveDelivery(ctx context.Context, driverID int64) (*entities.Delivery, error) {
	query := url.Values{}
	query.Set("driverId", strconv.FormatInt(driverID, 10))

	var dto deliveryDTO

	err := g.executeWithMetrics(ctx, "FetchActiveDelivery", true, func(ctx context.Context) error {
		return g.call(ctx, http.MethodGet, "/delivery/active", query, nil, &dto)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("gateway dispatch, fetch active delivery: %w", err)
	}

	return toDomainDelivery(&dto), nil
}

func (g *Gateway) AcceptOrder(ctx context.Context, driverID int64, orderID string, lat, lng float64) (*entities.Delivery, error) {
	query := url.Values{}
	query.Set("driverId", strconv.FormatInt(driverID, 10))

	body := acceptOrderRequest{
		OrderID:    orderID,
		CurrentLat: lat,
		CurrentLng: lng,
	}

	var dto deliveryDTO

	err := g.executeWithMetrics(ctx, "AcceptOrder", false, func(ctx context.Context) error {
		return g.call(ctx, http.MethodPost, "/orders/accept", query, body, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway dispatch, accept order %s: %w", orderID, err)
	}

	return toDomainDelivery(&dto), nil
}

func (g *Gateway) CompleteDelivery(ctx context.Context, deliveryID int64, completed bool, notes string, proofImage []byte) (*entities.Delivery, error) {
	query := url.Values{}
	query.Set("deliveryId", strconv.FormatInt(deliveryID, 10))

	body := completeDeliveryRequest{
		Completed:  completed,
		Notes:      notes,
		ProofImage: proofImage,
	}

	var dto deliveryDTO

	err := g.executeWithMetrics(ctx, "CompleteDelivery", false, func(ctx context.Context) error {
		return g.call(ctx, http.MethodPost, "/delivery/complete", query, body, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway dispatch, complete delivery %d: %w", deliveryID, err)
	}

	return toDomainDelivery(&dto), nil
}

func (g *Gateway) FetchHistory(ctx context.Context, driverID int64) ([]entities.Delivery, error) {
	query := url.Values{}
	query.Set("driverId", strconv.FormatInt(driverID, 10))

	var dtos []deliveryDTO

	err := g.executeWithMetrics(ctx, "FetchHistory", true, func(ctx context.Context) error {
		return g.call(ctx, http.MethodGet, "/delivery/history", query, nil, &dtos)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway dispatch, fetch history: %w", err)
	}

	return toDomainDeliveryList(dtos), nil
}

func (g *Gateway) FetchAnalytics(ctx context.Context, driverID int64) (*entities.Analytics, error) {
	query := url.Values{}
	query.Set("driverId", strconv.FormatInt(driverID, 10))

	var dto analyticsDTO

	err := g.executeWithMetrics(ctx, "FetchAnalytics", true, func(ctx context.Context) error {
		return g.call(ctx, http.MethodGet, "/analytics", query, nil, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway dispatch, fetch analytics: %w", err)
	}

	return toDomainAnalytics(&dto), nil
}

// UpdateDriverLocation - best-effort пуш позиции. Ошибку возвращаем,
// но вызывающая сторона ее только логирует и никогда не пробрасывает в сессию.
func (g *Gateway) UpdateDriverLocation(ctx context.Context, driverID int64, lat, lng float64) error {
	body := updateLocationRequest{
		Lat: lat,
		Lng: lng,
	}

	err := g.executeWithMetrics(ctx, "UpdateDriverLocation", true, func(ctx context.Context) error {
		return g.call(ctx, http.MethodPut, fmt.Sprintf("/driver/%d/location", driverID), nil, body, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway dispatch, update driver location: %w", err)
	}

	return nil
}

func (g *Gateway) call(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := g.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}

	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}

	// сетевой сбой без ответа сервера
	return errors.Is(err, ErrTransport)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, withRetry bool, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	wrapped := func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	}

	var err error
	if withRetry {
		err = g.retrier.ExecuteWithContext(ctx, wrapped)
	} else {
		err = wrapped(ctx)
	}

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func statusLabel(err error) string {
	if err == nil {
		return "ok"
	}

	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "cancelled"
	}
	return "transport"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
