package service

import (
	"testing"

	"mortgage-engine/domain"
)

func TestPlanDownPayment_PMIBoundary(t *testing.T) {

	service := NewDownPaymentService()

	input := domain.DownPaymentPlanInput{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         30,
		PMIRatePercent:    0.5,
		Candidates:        []float64{30000, 60000, 90000},
	}

	result, err := service.PlanDownPayment(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(result.Options))
	}

	// 10% down carries PMI, 20% and 30% do not.
	if !result.Options[0].PMIActive {
		t.Errorf("expected PMI at 10%% down")
	}
	if result.Options[1].PMIActive || result.Options[2].PMIActive {
		t.Errorf("expected no PMI at 20%% down and above")
	}

	if result.MinNoPMIDownPayment != 60000 {
		t.Errorf("expected 60000 as the smallest PMI-free down payment, got %.2f", result.MinNoPMIDownPayment)
	}
}

func TestPlanDownPayment_LargerDownPaymentIsCheaper(t *testing.T) {

	service := NewDownPaymentService()

	input := domain.DownPaymentPlanInput{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         30,
		PMIRatePercent:    0.5,
		Candidates:        []float64{30000, 60000, 90000},
	}

	result, err := service.PlanDownPayment(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CheapestDownPayment != 90000 {
		t.Errorf("expected 90000 to have the lowest total cost, got %.2f", result.CheapestDownPayment)
	}

	for i := 1; i < len(result.Options); i++ {
		if result.Options[i].TotalCost >= result.Options[i-1].TotalCost {
			t.Errorf("expected total cost to fall as the down payment grows")
			break
		}
	}
}

func TestPlanDownPayment_InvalidInput(t *testing.T) {

	service := NewDownPaymentService()

	base := domain.DownPaymentPlanInput{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         30,
	}

	cases := []struct {
		name       string
		candidates []float64
	}{
		{name: "no candidates", candidates: nil},
		{name: "negative candidate", candidates: []float64{-1}},
		{name: "candidate swallows principal", candidates: []float64{300000}},
		{name: "duplicate candidates", candidates: []float64{50000, 50000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			input.Candidates = tc.candidates
			if _, err := service.PlanDownPayment(input); err == nil {
				t.Errorf("expected error")
			}
		})
	}

	t.Run("too many candidates", func(t *testing.T) {
		input := base
		for i := 0; i <= MaxCandidatesPerRequest; i++ {
			input.Candidates = append(input.Candidates, float64(i)*1000)
		}
		if _, err := service.PlanDownPayment(input); err == nil {
			t.Errorf("expected error")
		}
	})
}
