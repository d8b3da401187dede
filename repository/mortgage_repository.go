package repository

import "mortgage-engine/domain"

type MortgageRepository interface {
	Save(input domain.MortgageInput, result domain.MortgageResult) error
	Recent(limit int) ([]domain.CalculationRecord, error)
}
