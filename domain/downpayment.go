package domain

type DownPaymentPlanInput struct {
	Principal         float64   `json:"principal"`
	AnnualRatePercent float64   `json:"annual_rate_percent"`
	TermYears         int       `json:"term_years"`
	AnnualPropertyTax float64   `json:"annual_property_tax"`
	AnnualInsurance   float64   `json:"annual_insurance"`
	PMIRatePercent    float64   `json:"pmi_rate_percent"`
	Candidates        []float64 `json:"candidates"` // down payment amounts to compare
}

type DownPaymentOption struct {
	DownPayment         float64 `json:"down_payment"`
	LoanAmount          float64 `json:"loan_amount"`
	MonthlyPayment      float64 `json:"monthly_payment"`
	TotalMonthlyPayment float64 `json:"total_monthly_payment"`
	MonthlyPMI          float64 `json:"monthly_pmi"`
	PMIActive           bool    `json:"pmi_active"`
	TotalCost           float64 `json:"total_cost"` // down payment + all payments over the term
	TotalInterest       float64 `json:"total_interest"`
}

type DownPaymentPlanResult struct {
	Options []DownPaymentOption `json:"options"`
	// CheapestDownPayment is the candidate with the lowest total cost.
	CheapestDownPayment float64 `json:"cheapest_down_payment"`
	// MinNoPMIDownPayment is the smallest candidate that avoids PMI,
	// or 0 when every candidate triggers it.
	MinNoPMIDownPayment float64 `json:"min_no_pmi_down_payment"`
}
