package staffservice

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

// Client клиент для работы со StaffService (профили врачей и терапевтов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPractitioner получает профиль врача с календарем рабочих часов
func (c *Client) GetPractitioner(ctx context.Context, practitionerID string) (*Practitioner, error) {
	url := fmt.Sprintf("%s/internal/practitioners/%s", c.baseURL, practitionerID)

	var practitioner Practitioner
	if err := c.getJSON(ctx, url, &practitioner, ErrPractitionerNotFound); err != nil {
		return nil, err
	}

	return &practitioner, nil
}

// ListPractitioners получает список всех врачей клиники
func (c *Client) ListPractitioners(ctx context.Context) ([]Practitioner, error) {
	url := fmt.Sprintf("%s/internal/practitioners", c.baseURL)

	var practitioners []Practitioner
	if err := c.getJSON(ctx, url, &practitioners, nil); err != nil {
		return nil, err
	}

	return practitioners, nil
}

// ListTherapists получает пул терапевтов, отсортированный по идентификатору.
// Порядок стабилен: аллокатор сессий перебирает терапевтов именно в нём.
func (c *Client) ListTherapists(ctx context.Context) ([]Therapist, error) {
	url := fmt.Sprintf("%s/internal/therapists?sort=therapist_id", c.baseURL)

	var therapists []Therapist
	if err := c.getJSON(ctx, url, &therapists, nil); err != nil {
		return nil, err
	}

	return therapists, nil
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
