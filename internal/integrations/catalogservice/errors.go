package catalogservice

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found in catalog")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrUnavailable возвращается, когда CatalogService недоступен.
	// Расчет доступности в этом случае отвечает "временно недоступно",
	// а не пустым списком слотов
	ErrUnavailable = errors.New("catalogservice unavailable")
)
