package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hecs-calculator/domain"
	"hecs-calculator/repository"
)

type TaxCalculationService struct {
	repo repository.TaxCalculationRepository
	now  func() time.Time
}

func NewTaxCalculationService(repo repository.TaxCalculationRepository) *TaxCalculationService {
	return &TaxCalculationService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Save stores a tax widget submission. Unlike Calculate, a storage failure
// is returned to the caller since storing is the whole operation.
func (s *TaxCalculationService) Save(
	ctx context.Context,
	input domain.TaxCalculationInput,
) (domain.TaxCalculation, error) {

	if err := validateTaxCalculationInput(input); err != nil {
		return domain.TaxCalculation{}, err
	}

	calc := domain.TaxCalculation{
		ID:              uuid.NewString(),
		Income:          input.Income,
		TaxYear:         strings.TrimSpace(input.TaxYear),
		ResidencyStatus: input.ResidencyStatus,
		CreatedAt:       s.now(),
	}
	if input.MedicareLevyExemption != nil {
		calc.MedicareLevyExemption = *input.MedicareLevyExemption
	}

	if err := s.repo.SaveTaxCalculation(ctx, calc); err != nil {
		return domain.TaxCalculation{}, fmt.Errorf("saving tax calculation: %w", err)
	}

	return calc, nil
}
