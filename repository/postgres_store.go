package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hecs-calculator/domain"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgresStore connects to databaseURL and creates missing tables.
func OpenPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("postgres store: database url not set")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) SaveCalculation(ctx context.Context, record domain.CalculationRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO calculations (id, debt, income, growth, years_to_repay, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.Debt, record.Income, record.Growth, record.YearsToRepay, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

func (s *PostgresStore) RecentCalculations(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	query := `
		SELECT id, debt, income, growth, years_to_repay, created_at
		FROM calculations
		ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		var r domain.CalculationRecord
		if err := rows.Scan(&r.ID, &r.Debt, &r.Income, &r.Growth, &r.YearsToRepay, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *PostgresStore) SaveTaxCalculation(ctx context.Context, calc domain.TaxCalculation) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tax_calculations (id, income, tax_year, residency_status, medicare_levy_exemption, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		calc.ID, calc.Income, calc.TaxYear, string(calc.ResidencyStatus), calc.MedicareLevyExemption, calc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save tax calculation: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveFeedback(ctx context.Context, fb domain.Feedback) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO feedback (id, type, title, description, email, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		fb.ID, string(fb.Type), fb.Title, fb.Description, fb.Email,
		string(fb.Status), string(fb.Priority), fb.CreatedAt, fb.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

func (s *PostgresStore) Count(ctx context.Context, collection string) (int64, error) {
	if !validCollection(collection) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	var n int64
	// collection is one of the fixed table names checked above
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+collection).Scan(&n)
	return n, err
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
