package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dashboard/internal/entities"
	retrierconfig "dashboard/pkg/retrier"
	"dashboard/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "order-backend"

	maxBodySize = 10 << 20

	requestIDHeader = "X-Request-ID"
	actorIDHeader   = "X-User-ID"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type Config struct {
	BaseURL string
	Token   string
}

// DefaultRetryConfig - политика повторов для читающих запросов.
func DefaultRetryConfig() retrierconfig.Config {
	return retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}
}

type Gateway struct {
	baseURL string
	token   string
	client  doer
	retrier retrier
}

func New(cfg Config, client doer) *Gateway {
	return NewWithRetrier(cfg, client, backoff_adapter.New(DefaultRetryConfig()))
}

func NewWithRetrier(cfg Config, client doer, r retrier) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  client,
		retrier: r,
	}
}

func (g *Gateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	body, err := g.read(ctx, "GetOrderByID", "/orders/"+url.PathEscape(orderID))
	if err != nil {
		return nil, fmt.Errorf("gateway backend, get order: %s: %w", orderID, err)
	}

	dto, ok, err := decodeObject[orderDTO](body)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, get order: %s: %w", orderID, err)
	}
	if !ok {
		return nil, fmt.Errorf("gateway backend, get order: %s: %w", orderID, ErrNotFound)
	}

	order := toDomainOrder(dto)
	return &order, nil
}

func (g *Gateway) GetOrders(ctx context.Context) ([]entities.Order, error) {
	return g.listOrders(ctx, "GetOrders", "/orders")
}

func (g *Gateway) GetOrdersForFleet(ctx context.Context) ([]entities.Order, error) {
	return g.listOrders(ctx, "GetOrdersForFleet", "/orders/fleet")
}

func (g *Gateway) GetOrdersByFleetPersonID(ctx context.Context, personID string) ([]entities.Order, error) {
	return g.listOrders(ctx, "GetOrdersByFleetPersonID", "/orders/fleet-person/"+url.PathEscape(personID))
}

func (g *Gateway) listOrders(ctx context.Context, method, path string) ([]entities.Order, error) {
	body, err := g.read(ctx, method, path)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, %s: %w", method, err)
	}

	dtos, err := decodeList[orderDTO](body)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, %s: %w", method, err)
	}

	return toDomainOrders(dtos), nil
}

// AssignFleetResources отправляет частичное назначение. Запрос не повторяется.
// Если бэкенд не вернул заказ в ответе, order == nil.
func (g *Gateway) AssignFleetResources(
	ctx context.Context,
	requestID string,
	orderID string,
	sel entities.Selections,
	actorID string,
) (*entities.Order, error) {
	payload, err := json.Marshal(toAssignRequest(sel, actorID))
	if err != nil {
		return nil, fmt.Errorf("gateway backend, assign: marshal: %w", err)
	}

	headers := http.Header{}
	headers.Set(requestIDHeader, requestID)
	headers.Set(actorIDHeader, actorID)

	var body []byte
	err = g.observe(ctx, "AssignFleetResources", func(ctx context.Context) error {
		var err error
		body, err = g.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(orderID)+"/assign-fleet", payload, headers)
		return err
	}, false)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, assign: %s: %w", orderID, err)
	}

	var envelope responseEnvelope
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("gateway backend, assign: %s: decode: %w", orderID, err)
		}
	}
	if envelope.Success != nil && !*envelope.Success {
		return nil, fmt.Errorf("gateway backend, assign: %s: %w", orderID, &APIError{
			StatusCode: http.StatusOK,
			Message:    envelope.Message,
			ErrorText:  envelope.Error,
		})
	}

	dto, ok, err := decodeObject[orderDTO](body)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, assign: %s: %w", orderID, err)
	}
	if !ok {
		return nil, nil
	}

	order := toDomainOrder(dto)
	return &order, nil
}

func (g *Gateway) GetAssignmentHistory(ctx context.Context, orderID string) ([]entities.HistoryEntry, error) {
	body, err := g.read(ctx, "GetAssignmentHistory", "/orders/"+url.PathEscape(orderID)+"/assignment-history")
	if err != nil {
		return nil, fmt.Errorf("gateway backend, get history: %s: %w", orderID, err)
	}

	dtos, err := decodeList[historyDTO](body)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, get history: %s: %w", orderID, err)
	}

	return toDomainHistory(dtos), nil
}

func (g *Gateway) GetVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	dtos, err := readList[vehicleDTO](ctx, g, "GetVehicles", "/vehicles")
	if err != nil {
		return nil, err
	}
	return toDomainVehicles(dtos), nil
}

func (g *Gateway) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	dtos, err := readList[driverDTO](ctx, g, "GetDrivers", "/drivers")
	if err != nil {
		return nil, err
	}
	return toDomainDrivers(dtos), nil
}

func (g *Gateway) GetTrailers(ctx context.Context) ([]entities.Trailer, error) {
	dtos, err := readList[trailerDTO](ctx, g, "GetTrailers", "/trailers")
	if err != nil {
		return nil, err
	}
	return toDomainTrailers(dtos), nil
}

func readList[T any](ctx context.Context, g *Gateway, method, path string) ([]T, error) {
	body, err := g.read(ctx, method, path)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, %s: %w", method, err)
	}

	items, err := decodeList[T](body)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, %s: %w", method, err)
	}
	return items, nil
}

func (g *Gateway) read(ctx context.Context, method, path string) ([]byte, error) {
	var body []byte
	err := g.observe(ctx, method, func(ctx context.Context) error {
		var err error
		body, err = g.do(ctx, http.MethodGet, path, nil, nil)
		return err
	}, true)
	return body, err
}

func (g *Gateway) do(ctx context.Context, httpMethod, path string, payload []byte, headers http.Header) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", httpMethod, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classify(toAPIError(resp.StatusCode, body))
	}

	return body, nil
}

func toAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var payload errorBody
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = strings.TrimSpace(payload.Message)
		apiErr.ErrorText = strings.TrimSpace(payload.Error)
	}

	return apiErr
}

func (g *Gateway) observe(ctx context.Context, method string, fn func(context.Context) error, retry bool) error {
	var attempt uint64
	start := time.Now()

	var err error
	if retry {
		err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			attempt++
			return fn(ctx)
		})
	} else {
		attempt = 1
		err = fn(ctx)
	}

	code := statusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Add(float64(attempt - 1))
	}

	return err
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	var urlErr *url.Error
	return errors.As(err, &netErr) || errors.As(err, &urlErr)
}

func statusCode(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "CANCELED"
	}
	return "TRANSPORT"
}
