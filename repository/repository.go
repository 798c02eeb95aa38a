package repository

import (
	"context"
	"errors"

	"hecs-calculator/domain"
)

// Collection names shared by every backend.
const (
	CollectionCalculations    = "calculations"
	CollectionTaxCalculations = "tax_calculations"
	CollectionFeedback        = "feedback"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownDriver     = errors.New("unknown storage driver")
)

func validCollection(name string) bool {
	switch name {
	case CollectionCalculations, CollectionTaxCalculations, CollectionFeedback:
		return true
	}
	return false
}

type CalculationRepository interface {
	SaveCalculation(ctx context.Context, record domain.CalculationRecord) error
	// RecentCalculations returns up to limit records, newest first.
	RecentCalculations(ctx context.Context, limit int) ([]domain.CalculationRecord, error)
}

type TaxCalculationRepository interface {
	SaveTaxCalculation(ctx context.Context, calc domain.TaxCalculation) error
}

type FeedbackRepository interface {
	SaveFeedback(ctx context.Context, fb domain.Feedback) error
}

// Store is a document store backend holding every collection.
type Store interface {
	CalculationRepository
	TaxCalculationRepository
	FeedbackRepository

	Count(ctx context.Context, collection string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
