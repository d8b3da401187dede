package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"mortgage-engine/domain"
)

const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS mortgage_calculations (
	id TEXT PRIMARY KEY,
	principal REAL NOT NULL,
	annual_rate_percent REAL NOT NULL,
	term_years INTEGER NOT NULL,
	down_payment REAL NOT NULL,
	annual_property_tax REAL NOT NULL,
	annual_insurance REAL NOT NULL,
	pmi_rate_percent REAL NOT NULL,
	monthly_payment REAL NOT NULL,
	total_interest REAL NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// SQLiteMortgageRepository persists calculations in a sqlite database.
type SQLiteMortgageRepository struct {
	db *sql.DB
}

// NewSQLiteMortgageRepository opens (or creates) the database at path
// and ensures the calculations table exists. Use ":memory:" for an
// ephemeral store.
func NewSQLiteMortgageRepository(path string) (*SQLiteMortgageRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createCalculationsTable); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteMortgageRepository{db: db}, nil
}

func (r *SQLiteMortgageRepository) Close() error {
	return r.db.Close()
}

// Save inserts the calculation as a new row.
func (r *SQLiteMortgageRepository) Save(
	input domain.MortgageInput,
	result domain.MortgageResult,
) error {
	_, err := r.db.Exec(
		`INSERT INTO mortgage_calculations
		(id, principal, annual_rate_percent, term_years, down_payment,
		 annual_property_tax, annual_insurance, pmi_rate_percent,
		 monthly_payment, total_interest, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		input.Principal,
		input.AnnualRatePercent,
		input.TermYears,
		input.DownPayment,
		input.AnnualPropertyTax,
		input.AnnualInsurance,
		input.PMIRatePercent,
		result.MonthlyPayment,
		result.TotalInterest,
		time.Now().UTC(),
	)
	return err
}

// Recent returns up to limit rows, newest first.
func (r *SQLiteMortgageRepository) Recent(limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(
		`SELECT id, principal, annual_rate_percent, term_years, down_payment,
		        annual_property_tax, annual_insurance, pmi_rate_percent,
		        monthly_payment, total_interest, created_at
		 FROM mortgage_calculations
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		var rec domain.CalculationRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Input.Principal,
			&rec.Input.AnnualRatePercent,
			&rec.Input.TermYears,
			&rec.Input.DownPayment,
			&rec.Input.AnnualPropertyTax,
			&rec.Input.AnnualInsurance,
			&rec.Input.PMIRatePercent,
			&rec.MonthlyPayment,
			&rec.TotalInterest,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
