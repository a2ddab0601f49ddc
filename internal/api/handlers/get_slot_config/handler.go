package get_slot_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akholodov/salon-booking-service/internal/api/handlers"
	"github.com/akholodov/salon-booking-service/internal/service/config"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgStaffNotFound  = "мастер не найден"
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

// Handle GET /api/v1/staff/{staffId}/slot-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/slot-config - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.GetSlotConfig(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/slot-config - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/{id}/slot-config - Failed to get slot config: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/slot-config - Slot config retrieved: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
