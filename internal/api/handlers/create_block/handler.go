package create_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akholodov/salon-booking-service/internal/api/handlers"
	"github.com/akholodov/salon-booking-service/internal/service/schedule"
	"github.com/akholodov/salon-booking-service/internal/service/schedule/models"
)

const (
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBlock       = "некорректные параметры блокировки"
	msgStaffNotFound      = "мастер не найден"
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

// Handle POST /api/v1/staff/{staffId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/blocks - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req models.CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/blocks - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /staff/{id}/blocks - Invalid block: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /staff/{id}/blocks - Failed to create block: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{id}/blocks - Block created: staff_id=%d, block_id=%d", staffID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
