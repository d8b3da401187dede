package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(monthsPerYear)

	pmiThreshold = decimal.NewFromFloat(PMIEquityThreshold)
)

// roundTo2Decimals rounds a monetary value to 2 decimal places.
// Applied only at result-assembly boundaries, never inside the
// simulation loop.
func roundTo2Decimals(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}

// roundFloat2 rounds a plain float64 to 2 decimals, used for derived
// non-monetary figures such as scores.
func roundFloat2(value float64) float64 {
	return math.Round(value*100) / 100
}

type MortgageService struct {
	repo  repository.MortgageRepository
	cache repository.CacheRepository
}

// NewMortgageService creates a new MortgageService with the given
// repository and cache.
func NewMortgageService(repo repository.MortgageRepository,
	cache repository.CacheRepository,
) *MortgageService {
	return &MortgageService{repo: repo, cache: cache}
}

// CalculateMortgage runs the amortization engine for the given input,
// consulting the cache first and persisting the result afterwards.
// Cache and repository failures are logged, never propagated.
func (s *MortgageService) CalculateMortgage(
	input domain.MortgageInput,
) (domain.MortgageResult, error) {

	if err := validateInput(input); err != nil {
		return domain.MortgageResult{}, err
	}

	key := cacheKey(input)
	if raw, ok := s.cache.Get(key); ok {
		var cached domain.MortgageResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	result, err := ComputeMortgage(input)
	if err != nil {
		return domain.MortgageResult{}, err
	}

	// Saving is best effort: a storage failure must not fail the
	// calculation.
	if err := s.repo.Save(input, result); err != nil {
		log.Printf("Warning: failed to save mortgage calculation: %v", err)
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(raw)); err != nil {
			log.Printf("Warning: failed to cache mortgage result: %v", err)
		}
	}

	return result, nil
}

// History returns the most recent stored calculations.
func (s *MortgageService) History(limit int) ([]domain.CalculationRecord, error) {
	return s.repo.Recent(limit)
}

// cacheKey derives a stable key from the input fields. json.Marshal
// of a struct emits fields in declaration order, so identical inputs
// hash identically.
func cacheKey(input domain.MortgageInput) string {
	raw, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("mortgage:%016x", xxhash.Sum64(raw))
}

func validateInput(input domain.MortgageInput) error {
	if input.Principal <= 0 {
		return errors.New("principal must be positive")
	}
	if input.AnnualRatePercent < 0 {
		return errors.New("rate cannot be negative")
	}
	if input.TermYears <= 0 {
		return errors.New("term must be positive")
	}
	if input.Principal-input.DownPayment <= 0 {
		return errors.New("loan amount after down payment must be positive")
	}
	// Optional fields are deliberately not validated; absent values
	// default to zero.
	return nil
}

// ComputeMortgage is the pure amortization engine: no I/O, no shared
// state, safe for concurrent callers. It validates the input, derives
// the fixed monthly payment, aggregates escrow components and
// simulates the year-by-year schedule. Any arithmetic panic is
// recovered and reported as a computation error.
func ComputeMortgage(input domain.MortgageInput) (result domain.MortgageResult, err error) {
	if err = validateInput(input); err != nil {
		return domain.MortgageResult{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			result = domain.MortgageResult{}
			err = fmt.Errorf("mortgage computation failed: %v", r)
		}
	}()

	principal := decimal.NewFromFloat(input.Principal)
	downPayment := decimal.NewFromFloat(input.DownPayment)
	loanAmount := principal.Sub(downPayment)

	monthlyRate := decimal.NewFromFloat(input.AnnualRatePercent).Div(hundred).Div(twelve)
	numPeriods := input.TermYears * monthsPerYear
	periods := decimal.NewFromInt(int64(numPeriods))

	monthlyPayment := solvePayment(loanAmount, monthlyRate, periods)

	monthlyPropertyTax := decimal.NewFromFloat(input.AnnualPropertyTax).Div(twelve)
	monthlyInsurance := decimal.NewFromFloat(input.AnnualInsurance).Div(twelve)
	monthlyPMI := solvePMI(principal, downPayment, loanAmount, input.PMIRatePercent)

	totalMonthly := monthlyPayment.Add(monthlyPropertyTax).Add(monthlyInsurance).Add(monthlyPMI)

	totalPrincipalInterest := monthlyPayment.Mul(periods)
	escrow := monthlyPropertyTax.Add(monthlyInsurance).Add(monthlyPMI)
	totalPayment := totalPrincipalInterest.Add(escrow.Mul(periods))
	totalInterest := totalPrincipalInterest.Sub(loanAmount)

	schedule := amortize(loanAmount, monthlyRate, monthlyPayment, input.TermYears)

	return domain.MortgageResult{
		MonthlyPayment:      roundTo2Decimals(monthlyPayment),
		TotalMonthlyPayment: roundTo2Decimals(totalMonthly),
		TotalPayment:        roundTo2Decimals(totalPayment),
		TotalInterest:       roundTo2Decimals(totalInterest),
		MonthlyBreakdown: domain.MonthlyBreakdown{
			PrincipalAndInterest: roundTo2Decimals(monthlyPayment),
			PropertyTax:          roundTo2Decimals(monthlyPropertyTax),
			Insurance:            roundTo2Decimals(monthlyInsurance),
			PMI:                  roundTo2Decimals(monthlyPMI),
		},
		AmortizationSchedule: schedule,
	}, nil
}

// solvePayment applies the fixed-payment annuity formula. A zero rate
// degenerates the formula to 0/0, so that path is straight division.
func solvePayment(loanAmount, monthlyRate, periods decimal.Decimal) decimal.Decimal {
	if !monthlyRate.IsPositive() {
		return loanAmount.Div(periods)
	}
	growth := one.Add(monthlyRate).Pow(periods)
	return loanAmount.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one))
}

// solvePMI returns the monthly mortgage insurance charge. PMI applies
// only while the down payment is strictly below 20% of the principal
// and a positive PMI rate was given.
func solvePMI(principal, downPayment, loanAmount decimal.Decimal, pmiRatePercent float64) decimal.Decimal {
	pmiRate := decimal.NewFromFloat(pmiRatePercent)
	if downPayment.LessThan(principal.Mul(pmiThreshold)) && pmiRate.IsPositive() {
		return loanAmount.Mul(pmiRate).Div(hundred).Div(twelve)
	}
	return decimal.Zero
}

// amortize walks the loan balance period by period and aggregates the
// result into one row per year. The schedule always has exactly
// termYears rows: once the balance reaches zero the remaining rows
// carry zero activity.
func amortize(loanAmount, monthlyRate, monthlyPayment decimal.Decimal, termYears int) []domain.AmortizationRow {
	schedule := make([]domain.AmortizationRow, 0, termYears)
	balance := loanAmount

	for year := 1; year <= termYears; year++ {
		yearInterest := decimal.Zero
		yearPrincipal := decimal.Zero

		for month := 0; month < monthsPerYear; month++ {
			if !balance.IsPositive() {
				break
			}

			interest := balance.Mul(monthlyRate)
			principalPart := monthlyPayment.Sub(interest)

			yearInterest = yearInterest.Add(interest)
			yearPrincipal = yearPrincipal.Add(principalPart)

			balance = balance.Sub(principalPart)
			if balance.IsNegative() {
				balance = decimal.Zero
			}
		}

		schedule = append(schedule, domain.AmortizationRow{
			Year:             year,
			PrincipalPaid:    roundTo2Decimals(yearPrincipal),
			InterestPaid:     roundTo2Decimals(yearInterest),
			RemainingBalance: roundTo2Decimals(balance),
		})
	}

	return schedule
}
