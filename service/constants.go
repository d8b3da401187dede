package service

const (
	monthsPerYear = 12

	// PMIEquityThreshold is the down payment share below which PMI
	// applies. Standard underwriting convention, not configurable.
	PMIEquityThreshold = 0.20

	// PayoffTolerance is the residual balance treated as fully paid.
	PayoffTolerance = 0.01

	// Limits for the scenario services.
	MaxTermRangeYears       = 40 // widest min..max window to evaluate
	MaxCandidatesPerRequest = 25 // down payment candidates per request
)
