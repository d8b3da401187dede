package service

import (
	"errors"
	"fmt"
	"sort"

	"mortgage-engine/domain"
)

type DownPaymentService struct{}

func NewDownPaymentService() *DownPaymentService {
	return &DownPaymentService{}
}

// PlanDownPayment runs the amortization engine once per candidate down
// payment and compares the outcomes: total cost over the loan life and
// whether PMI applies. It reports the cheapest candidate and the
// smallest one that avoids PMI.
func (s *DownPaymentService) PlanDownPayment(
	input domain.DownPaymentPlanInput,
) (domain.DownPaymentPlanResult, error) {

	if input.Principal <= 0 {
		return domain.DownPaymentPlanResult{}, errors.New("principal must be positive")
	}
	if input.AnnualRatePercent < 0 {
		return domain.DownPaymentPlanResult{}, errors.New("rate cannot be negative")
	}
	if input.TermYears <= 0 {
		return domain.DownPaymentPlanResult{}, errors.New("term must be positive")
	}
	if len(input.Candidates) == 0 {
		return domain.DownPaymentPlanResult{}, errors.New("no down payment candidates provided")
	}
	if len(input.Candidates) > MaxCandidatesPerRequest {
		return domain.DownPaymentPlanResult{}, fmt.Errorf("number of candidates exceeds the maximum of %d", MaxCandidatesPerRequest)
	}

	seen := make(map[float64]bool, len(input.Candidates))
	for _, candidate := range input.Candidates {
		if candidate < 0 {
			return domain.DownPaymentPlanResult{}, errors.New("down payment cannot be negative")
		}
		if candidate >= input.Principal {
			return domain.DownPaymentPlanResult{}, fmt.Errorf("down payment %.2f leaves no loan amount", candidate)
		}
		if seen[candidate] {
			return domain.DownPaymentPlanResult{}, fmt.Errorf("duplicate down payment candidate: %.2f", candidate)
		}
		seen[candidate] = true
	}

	candidates := make([]float64, len(input.Candidates))
	copy(candidates, input.Candidates)
	sort.Float64s(candidates)

	options := make([]domain.DownPaymentOption, 0, len(candidates))
	for _, candidate := range candidates {
		result, err := ComputeMortgage(domain.MortgageInput{
			Principal:         input.Principal,
			AnnualRatePercent: input.AnnualRatePercent,
			TermYears:         input.TermYears,
			DownPayment:       candidate,
			AnnualPropertyTax: input.AnnualPropertyTax,
			AnnualInsurance:   input.AnnualInsurance,
			PMIRatePercent:    input.PMIRatePercent,
		})
		if err != nil {
			return domain.DownPaymentPlanResult{}, err
		}

		options = append(options, domain.DownPaymentOption{
			DownPayment:         candidate,
			LoanAmount:          input.Principal - candidate,
			MonthlyPayment:      result.MonthlyPayment,
			TotalMonthlyPayment: result.TotalMonthlyPayment,
			MonthlyPMI:          result.MonthlyBreakdown.PMI,
			PMIActive:           result.MonthlyBreakdown.PMI > 0,
			TotalCost:           roundFloat2(candidate + result.TotalPayment),
			TotalInterest:       result.TotalInterest,
		})
	}

	plan := domain.DownPaymentPlanResult{Options: options}

	cheapest := options[0]
	for _, option := range options[1:] {
		if option.TotalCost < cheapest.TotalCost {
			cheapest = option
		}
	}
	plan.CheapestDownPayment = cheapest.DownPayment

	// Candidates are sorted ascending, so the first PMI-free option is
	// already the smallest.
	for _, option := range options {
		if !option.PMIActive {
			plan.MinNoPMIDownPayment = option.DownPayment
			break
		}
	}

	return plan, nil
}
