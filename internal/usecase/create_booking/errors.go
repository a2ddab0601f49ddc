package create_booking

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrStaffInactive возвращается, когда мастер деактивирован
	ErrStaffInactive = errors.New("create_booking: staff is inactive")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_booking: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrOutsideWorkingHours возвращается, когда запрошенный интервал не
	// помещается целиком в рабочее время мастера (с учётом обеда и блокировок)
	ErrOutsideWorkingHours = errors.New("create_booking: requested time is outside working hours")

	// ErrSlotNotAvailable возвращается, когда запрошенный интервал
	// пересекается с другой активной записью
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLateToBook возвращается при нарушении минимального времени уведомления
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrConflict возвращается при конфликте сериализации: конкурирующее
	// резервирование завершилось первым, запрос можно безопасно повторить
	ErrConflict = errors.New("create_booking: concurrent reservation conflict, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
