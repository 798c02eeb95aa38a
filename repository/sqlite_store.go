package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hecs-calculator/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens or creates the database at dbPath.
func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if _, err := db.Exec(sqliteSchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Fixed-width so that created_at sorts lexically.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeFormat)
}

func (s *SQLiteStore) SaveCalculation(ctx context.Context, record domain.CalculationRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, debt, income, growth, years_to_repay, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.Debt, record.Income, record.Growth, record.YearsToRepay, formatTime(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving calculation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RecentCalculations(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, debt, income, growth, years_to_repay, created_at
		FROM calculations
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing calculations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		var r domain.CalculationRecord
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Debt, &r.Income, &r.Growth, &r.YearsToRepay, &createdAt); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(sqliteTimeFormat, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at of %s: %w", r.ID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) SaveTaxCalculation(ctx context.Context, calc domain.TaxCalculation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tax_calculations (id, income, tax_year, residency_status, medicare_levy_exemption, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		calc.ID, calc.Income, calc.TaxYear, string(calc.ResidencyStatus), calc.MedicareLevyExemption, formatTime(calc.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving tax calculation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveFeedback(ctx context.Context, fb domain.Feedback) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, type, title, description, email, status, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fb.ID, string(fb.Type), fb.Title, fb.Description, fb.Email,
		string(fb.Status), string(fb.Priority), formatTime(fb.CreatedAt), formatTime(fb.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Count(ctx context.Context, collection string) (int64, error) {
	if !validCollection(collection) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+collection).Scan(&n)
	return n, err
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
