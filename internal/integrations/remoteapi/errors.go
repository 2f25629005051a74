package remoteapi

import "errors"

var (
	// ErrRemoteUnavailable возвращается при любой ошибке транспорта или
	// не-2xx ответе сервера; вызывающий слой не различает причины
	ErrRemoteUnavailable = errors.New("remoteapi client: remote unavailable")

	// ErrNotFound возвращается, когда ресурс не найден на сервере
	ErrNotFound = errors.New("remoteapi client: resource not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервера
	ErrInvalidResponse = errors.New("remoteapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("remoteapi client: internal error")
)
