package find_available

import "time"

// Request запрос на поиск свободных врачей на дату и время
type Request struct {
	Date time.Time
	Time string
}

// AvailablePractitioner свободный врач на запрошенное время
type AvailablePractitioner struct {
	PractitionerID  string
	FullName        string
	Specializations []string
}

// Response список врачей, свободных на запрошенные дату и время
type Response struct {
	Date          time.Time
	Time          string
	Practitioners []AvailablePractitioner
}
