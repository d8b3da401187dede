package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mortgage-engine/domain"
)

// MemoryMortgageRepository is an in-memory implementation of
// MortgageRepository.
type MemoryMortgageRepository struct {
	mu      sync.Mutex
	records []domain.CalculationRecord
}

// NewMemoryMortgageRepository creates a new in-memory mortgage repository.
func NewMemoryMortgageRepository() *MemoryMortgageRepository {
	return &MemoryMortgageRepository{
		records: []domain.CalculationRecord{},
	}
}

// Save stores the calculation in memory.
func (r *MemoryMortgageRepository) Save(
	input domain.MortgageInput,
	result domain.MortgageResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, domain.CalculationRecord{
		ID:             uuid.NewString(),
		Input:          input,
		MonthlyPayment: result.MonthlyPayment,
		TotalInterest:  result.TotalInterest,
		CreatedAt:      time.Now().UTC(),
	})
	return nil
}

// Recent returns up to limit records, newest first.
func (r *MemoryMortgageRepository) Recent(limit int) ([]domain.CalculationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}

	records := make([]domain.CalculationRecord, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, r.records[i])
	}
	return records, nil
}
