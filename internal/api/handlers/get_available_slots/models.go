package get_available_slots

import (
	"time"

	"github.com/akholodov/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/akholodov/salon-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	SalonID   int64           `json:"salonId"`
	StaffID   int64           `json:"staffId"`
	ServiceID int64           `json:"serviceId"`
	Timezone  string          `json:"timezone"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		SalonID:   resp.SalonID,
		StaffID:   resp.StaffID,
		ServiceID: resp.ServiceID,
		Timezone:  resp.Timezone,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из URL и query параметров
func ToUseCaseRequest(userID, salonID, staffID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:    userID,
		SalonID:   salonID,
		StaffID:   staffID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
