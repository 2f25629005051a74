package bookingcache

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

var bucketName = []byte("cache")

// Store локальное хранилище списка бронирований.
// Весь список лежит под одним зарезервированным ключом как JSON-массив.
//
// Контракт хранилища намеренно мягкий: чтение никогда не возвращает ошибку
// (отсутствующий или битый payload эквивалентен пустому списку), запись
// выполняется best-effort - её ошибка логируется и проглатывается.
// Недоступность диска не должна ронять работу с бронированиями в памяти.
type Store struct {
	db  *bolt.DB
	log Logger
}

// Open открывает файл хранилища и создает bucket при необходимости
func Open(path string, log Logger) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open cache file %s: %v", ErrOpen, path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to create bucket: %v", ErrOpen, err)
	}

	return &Store{db: db, log: log}, nil
}

// ReadAll читает весь список бронирований
// Отсутствие данных или ошибка десериализации дают пустой список
func (s *Store) ReadAll() []*domain.Booking {
	var payload []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(bucketName).Get([]byte(domain.BookingsStorageKey)); data != nil {
			payload = make([]byte, len(data))
			copy(payload, data)
		}
		return nil
	})
	if err != nil {
		s.log.Error("ReadAll: cache read failed: %v", err)
		return []*domain.Booking{}
	}

	if payload == nil {
		return []*domain.Booking{}
	}

	var records []bookingRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		s.log.Error("ReadAll: malformed cache payload, treating as empty: %v", err)
		return []*domain.Booking{}
	}

	bookings, err := toDomainBookings(records)
	if err != nil {
		s.log.Error("ReadAll: malformed cache record, treating as empty: %v", err)
		return []*domain.Booking{}
	}

	return bookings
}

// WriteAll сохраняет весь список бронирований, заменяя предыдущий
func (s *Store) WriteAll(bookings []*domain.Booking) {
	records := make([]bookingRecord, 0, len(bookings))
	for _, booking := range bookings {
		records = append(records, toRecord(booking))
	}

	payload, err := json.Marshal(records)
	if err != nil {
		s.log.Error("WriteAll: failed to marshal %d bookings: %v", len(bookings), err)
		return
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(domain.BookingsStorageKey), payload)
	})
	if err != nil {
		s.log.Error("WriteAll: cache write failed for %d bookings: %v", len(bookings), err)
	}
}

// Clear удаляет сохраненный список бронирований
func (s *Store) Clear() {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(domain.BookingsStorageKey))
	})
	if err != nil {
		s.log.Error("Clear: cache delete failed: %v", err)
	}
}

// Close закрывает файл хранилища
func (s *Store) Close() error {
	return s.db.Close()
}
