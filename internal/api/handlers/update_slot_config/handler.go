package update_slot_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akholodov/salon-booking-service/internal/api/handlers"
	"github.com/akholodov/salon-booking-service/internal/service/config"
	"github.com/akholodov/salon-booking-service/internal/service/config/models"
)

const (
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGranularity = "некорректный шаг сетки слотов"
	msgStaffNotFound      = "мастер не найден"
)

type Handler struct {
	service SlotConfigService
	logger  Logger
}

func NewHandler(service SlotConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/{staffId}/slot-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/slot-config - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req models.UpdateSlotConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/slot-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSlotConfig(r.Context(), staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/{id}/slot-config - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id}/slot-config - Invalid granularity: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidGranularity)

		default:
			h.logger.Error("PUT /staff/{id}/slot-config - Failed to update slot config: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id}/slot-config - Slot config updated: staff_id=%d, effective=%d", staffID, result.EffectiveGranularityMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
