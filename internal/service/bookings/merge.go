package bookings

import "github.com/m04kA/HMS-BookingAgent/internal/domain"

// mergeBookings сливает серверный список с локальным кэшем.
//
// Сервер авторитетен для всего, что ему известно: результат начинается с
// копии серверного списка в серверном порядке. Локальная запись попадает в
// результат, только если её ID отсутствует в серверном списке И несет
// локальный префикс - то есть она была создана офлайн и ещё не
// синхронизирована.
//
// Проверка префикса принципиальна: запись с серверным ID, которую сервер
// больше не возвращает, считается удаленной на сервере и отбрасывается,
// а не воскрешается из устаревшего кэша.
func mergeBookings(remote, local []*domain.Booking) []*domain.Booking {
	merged := make([]*domain.Booking, 0, len(remote)+len(local))
	merged = append(merged, remote...)

	remoteIDs := make(map[string]struct{}, len(remote))
	for _, booking := range remote {
		remoteIDs[booking.ID] = struct{}{}
	}

	for _, booking := range local {
		if _, exists := remoteIDs[booking.ID]; exists {
			continue
		}
		if !booking.IsLocalOnly() {
			continue
		}
		merged = append(merged, booking)
	}

	return merged
}
