package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akholodov/salon-booking-service/internal/api/handlers"
	"github.com/akholodov/salon-booking-service/internal/api/middleware"
	getAvailableSlots "github.com/akholodov/salon-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidStaffID   = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSalonNotFound    = "салон не найден"
	msgStaffNotFound    = "мастер не найден"
	msgStaffInactive    = "мастер недоступен для записи"
	msgServiceNotFound  = "услуга не найдена"
	msgDateInPast       = "дата в прошлом"
	msgDateTooFar       = "дата слишком далеко в будущем"
	msgUnavailable      = "расчет доступности временно невозможен, повторите запрос"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/staff/{staffId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// UserID опционален: доступность может смотреть и неавторизованный клиент
	userID, _ := middleware.GetUserID(r.Context())

	useCaseReq, err := ToUseCaseRequest(userID, salonID, staffID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffInactive):
			h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Staff inactive: staff_id=%d", staffID)
			handlers.RespondError(w, http.StatusConflict, msgStaffInactive)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Date in past: staff_id=%d, date=%s", staffID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Date too far: staff_id=%d, date=%s", staffID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/staff/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrTemporarilyUnavailable):
			// Пустой список слотов и сбой хранилища обязаны выглядеть
			// по-разному: здесь 503, а не []
			h.logger.Error("GET /salons/{id}/staff/{id}/available-slots - Temporarily unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /salons/{id}/staff/{id}/available-slots - Failed to get slots: staff_id=%d, service_id=%d, error=%v",
				staffID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salons/{id}/staff/{id}/available-slots - Slots retrieved successfully: staff_id=%d, service_id=%d, slots_count=%d",
		staffID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
