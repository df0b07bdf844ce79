package find_available_practitioners

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	findAvailable "github.com/m04kA/PKC-SchedulerService/internal/usecase/find_available"
)

// FindAvailableRequest запрос на поиск свободных врачей
type FindAvailableRequest struct {
	Date string `json:"date"` // Формат YYYY-MM-DD
	Time string `json:"time"` // Формат HH:MM
}

// PractitionerResponse свободный врач
type PractitionerResponse struct {
	PractitionerID  string   `json:"practitionerId"`
	FullName        string   `json:"fullName"`
	Specializations []string `json:"specializations"`
}

// FindAvailableResponse список свободных врачей на дату и время
type FindAvailableResponse struct {
	Date          string                 `json:"date"`
	Time          string                 `json:"time"`
	Practitioners []PractitionerResponse `json:"practitioners"`
	Total         int                    `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FindAvailableRequest) ToUseCaseRequest() (findAvailable.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return findAvailable.Request{}, err
	}
	return findAvailable.Request{Date: date, Time: r.Time}, nil
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *findAvailable.Response) *FindAvailableResponse {
	out := &FindAvailableResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time,
		Practitioners: make([]PractitionerResponse, 0, len(resp.Practitioners)),
		Total:         len(resp.Practitioners),
	}
	for _, p := range resp.Practitioners {
		out.Practitioners = append(out.Practitioners, PractitionerResponse{
			PractitionerID:  p.PractitionerID,
			FullName:        p.FullName,
			Specializations: p.Specializations,
		})
	}
	return out
}
