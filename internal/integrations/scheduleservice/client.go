package scheduleservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент удалённого сервиса расписаний.
// Транспортные ошибки повторяются с экспоненциальной задержкой
// (baseDelay * 2^n) ограниченное число раз, после чего возвращается
// ErrUnavailable.
type Client struct {
	baseURL       string
	authToken     string
	httpClient    *http.Client
	retryAttempts int
	retryBase     time.Duration
	log           Logger
}

// NewClient создает клиент сервиса расписаний
func NewClient(baseURL, authToken string, timeout time.Duration, retryAttempts int, retryBase time.Duration, log Logger) *Client {
	if retryAttempts < 1 {
		retryAttempts = 1
	}
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryAttempts: retryAttempts,
		retryBase:     retryBase,
		log:           log,
	}
}

// SaveEmployee сохраняет сотрудника: POST /employees
func (c *Client) SaveEmployee(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPost, "/employees", payload)
}

// GetEmployee получает сотрудника: GET /employees/{id}
func (c *Client) GetEmployee(ctx context.Context, id string) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodGet, "/employees/"+url.PathEscape(id), nil)
}

// SaveSchedule сохраняет шаблон расписания: POST /schedules
func (c *Client) SaveSchedule(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPost, "/schedules", payload)
}

// GetEmployeeSchedule получает активный шаблон сотрудника:
// GET /schedules/employee/{id}
func (c *Client) GetEmployeeSchedule(ctx context.Context, employeeID string) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodGet, "/schedules/employee/"+url.PathEscape(employeeID), nil)
}

// SaveBooking сохраняет заявку: POST /bookings
func (c *Client) SaveBooking(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPost, "/bookings", payload)
}

// GetEmployeeBookings получает заявки сотрудника за период:
// GET /bookings/employee/{id}?from=&to=
func (c *Client) GetEmployeeBookings(ctx context.Context, employeeID string, from, to *time.Time) ([]json.RawMessage, error) {
	path := "/bookings/employee/" + url.PathEscape(employeeID)

	query := url.Values{}
	if from != nil {
		query.Set("from", from.Format(domain.DateFormat))
	}
	if to != nil {
		query.Set("to", to.Format(domain.DateFormat))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	raw, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings list: %v", ErrInvalidResponse, err)
	}
	return items, nil
}

// Sync отправляет снимок локального кэша на согласование: POST /sync
func (c *Client) Sync(ctx context.Context, snapshot json.RawMessage) (*SyncResponse, error) {
	body, err := json.Marshal(SyncRequest{Snapshot: snapshot})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal sync request: %v", ErrInternal, err)
	}

	raw, err := c.doJSON(ctx, http.MethodPost, "/sync", body)
	if err != nil {
		return nil, err
	}

	var resp SyncResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode sync response: %v", ErrInvalidResponse, err)
	}
	return &resp, nil
}

// doJSON выполняет запрос с повторами на транспортных ошибках
func (c *Client) doJSON(ctx context.Context, method, path string, payload json.RawMessage) (json.RawMessage, error) {
	var lastErr error
	delay := c.retryBase

	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			c.log.Warn("scheduleservice: retrying %s %s (attempt %d/%d) after %v",
				method, path, attempt+1, c.retryAttempts, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			}
			delay *= 2
		}

		raw, retryable, err := c.doOnce(ctx, method, path, payload)
		if err == nil {
			return raw, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	c.log.Error("scheduleservice: %s %s unavailable after %d attempts: %v",
		method, path, c.retryAttempts, lastErr)
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// doOnce выполняет один запрос; второй результат - можно ли повторять
func (c *Client) doOnce(ctx context.Context, method, path string, payload json.RawMessage) (json.RawMessage, bool, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrNotFound
	case resp.StatusCode >= 500:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, true, fmt.Errorf("%w: status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	return raw, false, nil
}
