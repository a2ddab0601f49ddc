package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrInvalidTransition возвращается, когда запись нельзя подтвердить
	// из текущего статуса
	ErrInvalidTransition = errors.New("confirm_booking: booking cannot be confirmed from its current status")

	// ErrSlotNotAvailable возвращается при повторной активации, если время
	// записи уже занято другой активной записью
	ErrSlotNotAvailable = errors.New("confirm_booking: slot is no longer available")

	// ErrConflict возвращается при конфликте сериализации, запрос можно повторить
	ErrConflict = errors.New("confirm_booking: concurrent reservation conflict, retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
