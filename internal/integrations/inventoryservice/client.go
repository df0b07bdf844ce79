package inventoryservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с InventoryService (терапии и склад)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента InventoryService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTherapy получает терапию по идентификатору
func (c *Client) GetTherapy(ctx context.Context, therapyID int64) (*Therapy, error) {
	url := fmt.Sprintf("%s/internal/therapies/%d", c.baseURL, therapyID)

	var therapy Therapy
	if err := c.getJSON(ctx, url, &therapy, ErrTherapyNotFound); err != nil {
		return nil, err
	}

	return &therapy, nil
}

// GetRequiredItems получает список необходимых для терапии позиций
// вместе с текущими остатками на складе
func (c *Client) GetRequiredItems(ctx context.Context, therapyID int64) ([]RequiredItem, error) {
	url := fmt.Sprintf("%s/internal/therapies/%d/required-items", c.baseURL, therapyID)

	var items []RequiredItem
	if err := c.getJSON(ctx, url, &items, ErrTherapyNotFound); err != nil {
		return nil, err
	}

	return items, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается на 404, если задан
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
