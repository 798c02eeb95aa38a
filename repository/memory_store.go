package repository

import (
	"context"
	"fmt"
	"sync"

	"hecs-calculator/domain"
)

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	mu              sync.RWMutex
	calculations    []domain.CalculationRecord
	taxCalculations []domain.TaxCalculation
	feedback        []domain.Feedback
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveCalculation stores the calculation record in memory.
func (m *MemoryStore) SaveCalculation(_ context.Context, record domain.CalculationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calculations = append(m.calculations, record)
	return nil
}

func (m *MemoryStore) RecentCalculations(_ context.Context, limit int) ([]domain.CalculationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 || limit > len(m.calculations) {
		limit = len(m.calculations)
	}
	out := make([]domain.CalculationRecord, 0, limit)
	for i := len(m.calculations) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.calculations[i])
	}
	return out, nil
}

func (m *MemoryStore) SaveTaxCalculation(_ context.Context, calc domain.TaxCalculation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.taxCalculations = append(m.taxCalculations, calc)
	return nil
}

func (m *MemoryStore) SaveFeedback(_ context.Context, fb domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, fb)
	return nil
}

func (m *MemoryStore) Count(_ context.Context, collection string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch collection {
	case CollectionCalculations:
		return int64(len(m.calculations)), nil
	case CollectionTaxCalculations:
		return int64(len(m.taxCalculations)), nil
	case CollectionFeedback:
		return int64(len(m.feedback)), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }
