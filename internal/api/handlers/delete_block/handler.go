package delete_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akholodov/salon-booking-service/internal/api/handlers"
	"github.com/akholodov/salon-booking-service/internal/service/schedule"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidBlockID = "некорректный ID блокировки"
	msgStaffNotFound  = "мастер не найден"
	msgBlockNotFound  = "блокировка не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/staff/{staffId}/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/blocks/{blockId} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/blocks/{blockId} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.DeleteBlock(r.Context(), staffID, blockID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("DELETE /staff/{id}/blocks/{blockId} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /staff/{id}/blocks/{blockId} - Block not found: staff_id=%d, block_id=%d", staffID, blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /staff/{id}/blocks/{blockId} - Failed to delete block: staff_id=%d, block_id=%d, error=%v", staffID, blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id}/blocks/{blockId} - Block deleted: staff_id=%d, block_id=%d", staffID, blockID)
	handlers.RespondNoContent(w)
}
