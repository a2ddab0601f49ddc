package create_booking

import (
	"errors"
	"net/http"

	"github.com/akholodov/salon-booking-service/internal/api/handlers"
	"github.com/akholodov/salon-booking-service/internal/api/middleware"
	createBooking "github.com/akholodov/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSalonNotFound      = "салон не найден"
	msgStaffNotFound      = "мастер не найден"
	msgStaffInactive      = "мастер недоступен для записи"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgOutsideHours       = "выбранное время вне рабочих часов мастера"
	msgInvalidBookingDate = "некорректная дата записи"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgTooLateToBook      = "слишком поздно для записи на это время"
	msgConflictRetry      = "конкурирующая запись, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, staff_id=%d", userID, req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Concurrent conflict: user_id=%d, staff_id=%d", userID, req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgConflictRetry)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: user_id=%d, staff_id=%d", userID, req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgOutsideHours)

		case errors.Is(err, createBooking.ErrSalonNotFound):
			h.logger.Warn("POST /bookings - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrStaffInactive):
			h.logger.Warn("POST /bookings - Staff inactive: staff_id=%d", req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgStaffInactive)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, staff_id=%d", userID, req.StaffID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%d, staff_id=%d", userID, req.StaffID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%d, staff_id=%d", userID, req.StaffID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, staff_id=%d, error=%v",
				userID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, staff_id=%d",
		result.ID, userID, req.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
