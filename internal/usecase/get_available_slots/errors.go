package get_available_slots

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrStaffInactive возвращается, когда мастер деактивирован
	ErrStaffInactive = errors.New("staff is inactive")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrTemporarilyUnavailable возвращается при сбое хранилища или каталога.
	// Отличие от пустого списка слотов принципиально: пустой список — это
	// факт "всё занято", а эта ошибка — "ответить сейчас невозможно"
	ErrTemporarilyUnavailable = errors.New("availability temporarily unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
