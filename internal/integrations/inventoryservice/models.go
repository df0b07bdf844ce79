package inventoryservice

// Therapy модель терапии из InventoryService
type Therapy struct {
	TherapyID int64  `json:"therapy_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// RequiredItem позиция расходных материалов, необходимых для терапии,
// вместе с текущим остатком на складе. UpdatedBy — сотрудник, последним
// обновлявший остаток (nil, если позиция ещё не пополнялась).
type RequiredItem struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Required  int     `json:"required_qty"`
	Available int     `json:"available_qty"`
	UpdatedBy *string `json:"updated_by"`
}

// IsSufficient возвращает true, если остатка хватает на терапию
func (i *RequiredItem) IsSufficient() bool {
	return i.Available >= i.Required
}

// ErrorResponse модель ошибки от InventoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
