package create_booking

import (
	"time"

	"github.com/akholodov/salon-booking-service/internal/domain"
	createBooking "github.com/akholodov/salon-booking-service/internal/usecase/create_booking"
	"github.com/akholodov/salon-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SalonID   int64   `json:"salonId"`
	StaffID   int64   `json:"staffId"`
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`      // "2026-03-15"
	StartTime string  `json:"startTime"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
	Confirm   bool    `json:"confirm,omitempty"` // сразу confirmed вместо pending
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	ClientID        int64   `json:"clientId"`
	SalonID         int64   `json:"salonId"`
	StaffID         int64   `json:"staffId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	StartInstant    string  `json:"startInstant"` // ISO 8601, UTC
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		SalonID:   r.SalonID,
		StaffID:   r.StaffID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
		Confirm:   r.Confirm,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		ClientID:        resp.ClientID,
		SalonID:         resp.SalonID,
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		StartInstant:    resp.StartInstant.UTC().Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
