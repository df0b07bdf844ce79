package generate_slots

// Response результат генерации недельной сетки слотов для одного специалиста
type Response struct {
	ProviderID   string
	SlotsCreated int
	Skipped      bool
}

// BulkResponse результат генерации сеток для всех специалистов
type BulkResponse struct {
	Providers []Response
	Total     int
}
