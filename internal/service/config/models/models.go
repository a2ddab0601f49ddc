package models

// UpdateSlotConfigRequest запрос на изменение шага сетки слотов мастера
// GranularityMinutes = null сбрасывает явный шаг: дальше работает
// политика вывода (длительность единственной услуги или дефолт)
type UpdateSlotConfigRequest struct {
	GranularityMinutes *int `json:"granularityMinutes"`
}

// SlotConfigResponse ответ с конфигурацией сетки слотов мастера
type SlotConfigResponse struct {
	StaffID int64 `json:"staffId"`

	// ExplicitGranularityMinutes явно заданный шаг (null, если не задан)
	ExplicitGranularityMinutes *int `json:"explicitGranularityMinutes"`

	// EffectiveGranularityMinutes шаг, который реально используется
	// генератором слотов после применения политики вывода
	EffectiveGranularityMinutes int `json:"effectiveGranularityMinutes"`
}
