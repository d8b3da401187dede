package repository

import (
	"testing"

	"mortgage-engine/domain"
)

func sampleCalculation(principal float64) (domain.MortgageInput, domain.MortgageResult) {
	input := domain.MortgageInput{
		Principal:         principal,
		AnnualRatePercent: 4.5,
		TermYears:         30,
	}
	result := domain.MortgageResult{
		MonthlyPayment: 1520.06,
		TotalInterest:  247221.09,
	}
	return input, result
}

func TestMemoryRepository_RecentNewestFirst(t *testing.T) {

	repo := NewMemoryMortgageRepository()

	for _, principal := range []float64{100000, 200000, 300000} {
		input, result := sampleCalculation(principal)
		if err := repo.Save(input, result); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Input.Principal != 300000 {
		t.Errorf("expected newest record first, got principal %.2f", records[0].Input.Principal)
	}
	if records[0].ID == "" || records[0].ID == records[1].ID {
		t.Errorf("expected unique non-empty record ids")
	}
}

func TestMemoryRepository_RecentWithoutLimit(t *testing.T) {

	repo := NewMemoryMortgageRepository()

	input, result := sampleCalculation(100000)
	if err := repo.Save(input, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := repo.Recent(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected all records when limit is 0, got %d", len(records))
	}
}

func TestSQLiteRepository_SaveAndRecent(t *testing.T) {

	repo, err := NewSQLiteMortgageRepository(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer repo.Close()

	input, result := sampleCalculation(300000)
	if err := repo.Save(input, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Input.Principal != 300000 || rec.Input.TermYears != 30 {
		t.Errorf("stored input does not round trip: %+v", rec.Input)
	}
	if rec.MonthlyPayment != 1520.06 {
		t.Errorf("expected monthly payment 1520.06, got %.2f", rec.MonthlyPayment)
	}
	if rec.CreatedAt.IsZero() {
		t.Errorf("expected a created_at timestamp")
	}
}
