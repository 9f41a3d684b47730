package repository

import (
	"context"
	"log/slog"
	"sync"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/infra"
)

// MemoryRecordRepository is the default record store when no database is configured.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[string]booking.Record
	logger  *slog.Logger
}

func NewMemoryRecordRepository(logger *slog.Logger) *MemoryRecordRepository {
	return &MemoryRecordRepository{records: make(map[string]booking.Record), logger: logger}
}

func (m *MemoryRecordRepository) Create(_ context.Context, rec *booking.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[rec.ID()]; ok {
		return infra.WrapRepoErr(m.logger, infra.KindDuplicateKey, "booking id already exists", nil)
	}
	m.records[rec.ID()] = *rec
	return nil
}

func (m *MemoryRecordRepository) FindByID(_ context.Context, id string) (*booking.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, infra.WrapRepoErr(m.logger, infra.KindNotFound, "booking record not found", nil)
	}
	return &rec, nil
}

func (m *MemoryRecordRepository) UpdateConfirmation(_ context.Context, id string, status booking.ConfirmationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return infra.WrapRepoErr(m.logger, infra.KindNotFound, "booking record not found", nil)
	}
	if rec.MarkConfirmation(status) {
		m.records[id] = rec
	}
	return nil
}
