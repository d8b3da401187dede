package service

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"mortgage-engine/domain"
)

type TermComparisonService struct{}

func NewTermComparisonService() *TermComparisonService {
	return &TermComparisonService{}
}

// CompareTerms evaluates every term in the requested range through the
// amortization engine and recommends one according to the caller's
// preference.
func (s *TermComparisonService) CompareTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	if input.Principal <= 0 {
		return domain.TermComparisonResult{}, errors.New("principal must be positive")
	}
	if input.AnnualRatePercent < 0 {
		return domain.TermComparisonResult{}, errors.New("rate cannot be negative")
	}
	if input.MinTermYears <= 0 || input.MaxTermYears <= 0 {
		return domain.TermComparisonResult{}, errors.New("term range must be positive")
	}
	if input.MinTermYears > input.MaxTermYears {
		return domain.TermComparisonResult{}, errors.New("minimum term exceeds maximum term")
	}
	if input.MaxTermYears-input.MinTermYears > MaxTermRangeYears {
		return domain.TermComparisonResult{}, fmt.Errorf("term range exceeds the maximum of %d years", MaxTermRangeYears)
	}
	if input.MaxMonthlyPayment <= 0 {
		return domain.TermComparisonResult{}, errors.New("maximum monthly payment must be positive")
	}

	preferences := map[string]bool{
		"minimize_interest": true,
		"minimize_payment":  true,
		"balanced":          true,
	}
	if !preferences[input.Preference] {
		return domain.TermComparisonResult{}, errors.New("unknown preference")
	}

	options := []domain.TermOption{}

	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		result, err := ComputeMortgage(domain.MortgageInput{
			Principal:         input.Principal,
			AnnualRatePercent: input.AnnualRatePercent,
			TermYears:         term,
			DownPayment:       input.DownPayment,
		})
		if err != nil {
			log.Printf("Warning: failed to compute mortgage for %d-year term: %v", term, err)
			continue
		}

		if result.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		options = append(options, domain.TermOption{
			TermYears:      term,
			MonthlyPayment: result.MonthlyPayment,
			TotalInterest:  result.TotalInterest,
			Score:          s.score(result, input, term),
			Reason:         s.reason(input.Preference),
		})
	}

	if len(options) == 0 {
		return domain.TermComparisonResult{}, errors.New("no term in the range fits the maximum monthly payment")
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	return domain.TermComparisonResult{
		RecommendedTermYears: options[0].TermYears,
		Options:              options,
	}, nil
}

// score normalizes interest, payment and term length to 0-10 and
// blends them with preference weights.
func (s *TermComparisonService) score(
	result domain.MortgageResult,
	input domain.TermComparisonInput,
	term int,
) float64 {

	loanAmount := input.Principal - input.DownPayment
	maxPossibleInterest := loanAmount * (input.AnnualRatePercent / 100) * float64(input.MaxTermYears)
	minPossibleInterest := loanAmount * (input.AnnualRatePercent / 100) * float64(input.MinTermYears)

	interestRange := maxPossibleInterest - minPossibleInterest
	paymentFloor := loanAmount / float64(input.MaxTermYears*monthsPerYear)
	paymentRange := input.MaxMonthlyPayment - paymentFloor

	interestScore := 0.0
	paymentScore := 0.0
	termScore := 10.0

	if interestRange > 0 {
		interestScore = 10.0 * (1.0 - (result.TotalInterest-minPossibleInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10.0 * (1.0 - (result.MonthlyPayment-paymentFloor)/paymentRange)
	}
	if input.MaxTermYears > input.MinTermYears {
		termScore = 10.0 * (1.0 - float64(term-input.MinTermYears)/float64(input.MaxTermYears-input.MinTermYears))
	}

	var score float64
	switch input.Preference {
	case "minimize_interest":
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case "minimize_payment":
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case "balanced":
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return roundFloat2(score)
}

func (s *TermComparisonService) reason(preference string) string {
	switch preference {
	case "minimize_interest":
		return "term optimized to minimize total interest cost"
	case "minimize_payment":
		return "term optimized to minimize the monthly payment"
	case "balanced":
		return "best balance between monthly payment and total cost"
	}
	return "recommendation based on the provided parameters"
}
