package domain

import "time"

// MortgageInput holds the raw loan parameters for a single calculation.
// Only Principal, AnnualRatePercent and TermYears are required; the
// remaining fields default to zero.
type MortgageInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         int     `json:"term_years"`
	DownPayment       float64 `json:"down_payment"`
	AnnualPropertyTax float64 `json:"annual_property_tax"`
	AnnualInsurance   float64 `json:"annual_insurance"`
	PMIRatePercent    float64 `json:"pmi_rate_percent"`
}

// MonthlyBreakdown splits the total monthly payment into its components.
type MonthlyBreakdown struct {
	PrincipalAndInterest float64 `json:"principal_and_interest"`
	PropertyTax          float64 `json:"property_tax"`
	Insurance            float64 `json:"insurance"`
	PMI                  float64 `json:"pmi"`
}

// AmortizationRow is one year of the amortization schedule.
type AmortizationRow struct {
	Year             int     `json:"year"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// CalculationRecord is a stored mortgage calculation, as kept in the
// history repository.
type CalculationRecord struct {
	ID             string        `json:"id"`
	Input          MortgageInput `json:"input"`
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalInterest  float64       `json:"total_interest"`
	CreatedAt      time.Time     `json:"created_at"`
}

// MortgageResult is the complete output of a mortgage calculation.
// All monetary fields are rounded to 2 decimal places.
type MortgageResult struct {
	MonthlyPayment       float64           `json:"monthly_payment"`
	TotalMonthlyPayment  float64           `json:"total_monthly_payment"`
	TotalPayment         float64           `json:"total_payment"`
	TotalInterest        float64           `json:"total_interest"`
	MonthlyBreakdown     MonthlyBreakdown  `json:"monthly_breakdown"`
	AmortizationSchedule []AmortizationRow `json:"amortization_schedule"`
}
