package get_available_slots

import (
	"time"

	"github.com/akholodov/salon-booking-service/internal/domain"
	"github.com/akholodov/salon-booking-service/pkg/timezone"
	"github.com/akholodov/salon-booking-service/pkg/types"
)

const minutesPerDay = 24 * 60

// buildFreeIntervals вычисляет свободные интервалы локального дня:
// рабочие окна (за вычетом обеда) минус блокировки минус активные записи
// Вся арифметика идёт в минутах локального дня салона
func buildFreeIntervals(
	norm *timezone.Normalizer,
	patterns []domain.WorkingPattern,
	blocks []domain.Block,
	bookings []*domain.Booking,
	date time.Time,
	weekday time.Weekday,
) ([]domain.Interval, error) {
	work, err := domain.DayWorkIntervals(patterns, weekday)
	if err != nil {
		return nil, err
	}
	if len(work) == 0 {
		return nil, nil
	}

	blocked, err := domain.DayBlockIntervals(blocks, date, weekday)
	if err != nil {
		return nil, err
	}

	cuts := append(blocked, bookingIntervals(norm, bookings, date)...)
	return domain.SubtractAll(work, cuts), nil
}

// bookingIntervals проецирует занимающие время записи на минуты
// локального дня. Запись, выходящая за границы суток, обрезается до них
func bookingIntervals(norm *timezone.Normalizer, bookings []*domain.Booking, date time.Time) []domain.Interval {
	dayStart, dayEnd := norm.DayBounds(date)

	intervals := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsBlocking() {
			continue
		}
		if !b.OverlapsInstant(dayStart, dayEnd) {
			continue
		}

		start := 0
		if b.StartInstant.After(dayStart) {
			start = norm.MinutesOfDay(b.StartInstant)
		}
		end := minutesPerDay
		if b.EndInstant().Before(dayEnd) {
			end = norm.MinutesOfDay(b.EndInstant())
		}

		if start < end {
			intervals = append(intervals, domain.Interval{Start: start, End: end})
		}
	}

	return intervals
}

// earliestStartMinutes возвращает нижнюю границу начала слота:
// для сегодняшней даты это "сейчас + минимальное уведомление" в минутах
// локального дня, для любой другой даты ограничений нет
func earliestStartMinutes(norm *timezone.Normalizer, date time.Time, now time.Time, minNoticeMinutes int) int {
	if !norm.IsSameLocalDay(date, now) {
		return 0
	}

	cutoff := now.Add(time.Duration(minNoticeMinutes) * time.Minute)
	if !norm.IsSameLocalDay(date, cutoff) {
		// Порог перевалил за полночь — сегодня слотов больше нет
		return minutesPerDay
	}
	return norm.MinutesOfDay(cutoff)
}

// toSlots конвертирует минуты начала в DTO слотов
func toSlots(starts []int, durationMinutes int) ([]Slot, error) {
	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		ts, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{
			StartTime:       ts,
			DurationMinutes: durationMinutes,
		})
	}
	return slots, nil
}
