package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/akholodov/salon-booking-service/internal/api/handlers"
	"github.com/akholodov/salon-booking-service/internal/api/middleware"
	confirmBooking "github.com/akholodov/salon-booking-service/internal/usecase/confirm_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID записи"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "запись не найдена"
	msgInvalidTransition = "запись нельзя подтвердить из текущего статуса"
	msgSlotNotAvailable  = "время записи уже занято"
	msgConflictRetry     = "конкурирующая запись, повторите запрос"
)

// ConfirmedBookingResponse HTTP response model
type ConfirmedBookingResponse struct {
	ID           int64  `json:"id"`
	Reference    string `json:"reference"`
	Status       string `json:"status"`
	StartInstant string `json:"startInstant"` // ISO 8601, UTC
	UpdatedAt    string `json:"updatedAt"`
}

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrInvalidTransition):
			h.logger.Warn("POST /bookings/{id}/confirm - Invalid transition: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, confirmBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings/{id}/confirm - Slot not available: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, confirmBooking.ErrConflict):
			h.logger.Warn("POST /bookings/{id}/confirm - Concurrent conflict: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgConflictRetry)

		default:
			h.logger.Error("POST /bookings/{id}/confirm - Failed to confirm booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm - Booking confirmed: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, &ConfirmedBookingResponse{
		ID:           result.ID,
		Reference:    result.Reference,
		Status:       result.Status,
		StartInstant: result.StartInstant.UTC().Format(time.RFC3339),
		UpdatedAt:    result.UpdatedAt.Format(time.RFC3339),
	})
}
