// Package localid генерирует клиентские идентификаторы бронирований,
// создаваемых при недоступности удаленного API.
//
// Формат: local_<unixMillis>_<7 символов base36>. Префикс зарезервирован:
// серверные идентификаторы никогда его не содержат, и именно по нему
// алгоритм слияния отличает несинхронизированные локальные записи.
package localid

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Prefix префикс локальных идентификаторов
const Prefix = "local_"

const suffixLen = 7

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// New генерирует локальный идентификатор для переданного момента времени
func New(now time.Time) string {
	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	b.WriteByte('_')

	mu.Lock()
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(base36Chars[rng.Intn(len(base36Chars))])
	}
	mu.Unlock()

	return b.String()
}

// IsLocal сообщает, является ли идентификатор локальным (не серверным)
func IsLocal(id string) bool {
	return strings.HasPrefix(id, Prefix)
}

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"
