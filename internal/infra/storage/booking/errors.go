package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOverlap возвращается, когда вставка нарушила exclusion constraint
	// пересечения интервалов (кто-то успел занять слот)
	ErrOverlap = errors.New("booking.repository: overlapping booking exists")

	// ErrSerialization возвращается при сбое сериализации транзакции;
	// вызывающий должен трактовать это как конфликт и повторить попытку
	ErrSerialization = errors.New("booking.repository: transaction serialization failure")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("booking.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
