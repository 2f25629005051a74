package bookingcache

import "errors"

var (
	// ErrOpen возвращается, когда файл хранилища не удалось открыть
	ErrOpen = errors.New("bookingcache: failed to open store")
)
