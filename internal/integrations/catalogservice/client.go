package catalogservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Client клиент для работы с CatalogService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetService получает услугу салона по ID
func (c *Client) GetService(ctx context.Context, salonID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/salons/%d/services/%d", c.baseURL, salonID, serviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CatalogService unavailable: salon_id=%d, service_id=%d: %v", salonID, serviceID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid service ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrServiceNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var service Service
	if err := json.NewDecoder(resp.Body).Decode(&service); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &service, nil
}

// ListStaffServices получает активные услуги, которые оказывает мастер.
// Используется политикой вывода шага сетки: если мастер оказывает ровно
// одну услугу, ее длительность становится шагом
func (c *Client) ListStaffServices(ctx context.Context, staffID int64) ([]Service, error) {
	url := fmt.Sprintf("%s/internal/staff/%d/services", c.baseURL, staffID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CatalogService unavailable: staff_id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var services []Service
	if err := json.NewDecoder(resp.Body).Decode(&services); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return services, nil
}

// GetActiveService получает услугу и проверяет, что она активна.
// Неактивная услуга для записи эквивалентна отсутствующей
func (c *Client) GetActiveService(ctx context.Context, salonID, serviceID int64) (*Service, error) {
	service, err := c.GetService(ctx, salonID, serviceID)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.log.Info("Service not found: salon_id=%d, service_id=%d", salonID, serviceID)
		}
		return nil, err
	}

	if !service.Active {
		return nil, ErrServiceNotFound
	}

	return service, nil
}
