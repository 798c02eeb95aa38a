package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"hecs-calculator/domain"
	"hecs-calculator/repository"
)

type RepaymentService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
	table RateTable
	now   func() time.Time
}

// NewRepaymentService creates a RepaymentService using DefaultRateTable.
// cache may be nil, in which case every request is projected.
func NewRepaymentService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *RepaymentService {
	if cache == nil {
		cache = repository.NoopCache{}
	}
	return &RepaymentService{
		repo:  repo,
		cache: cache,
		table: DefaultRateTable,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Calculate validates the input, projects the repayment schedule and
// records the submission. Persistence failures are logged and do not
// affect the returned schedule.
func (s *RepaymentService) Calculate(
	ctx context.Context,
	input domain.RepaymentInput,
) (domain.RepaymentResult, error) {

	if err := ValidateRepaymentInput(input); err != nil {
		return domain.RepaymentResult{}, err
	}

	result := s.project(ctx, input)

	record := domain.CalculationRecord{
		ID:           uuid.NewString(),
		Debt:         input.Debt,
		Income:       input.Income,
		Growth:       input.Growth,
		YearsToRepay: result.YearsToRepay,
		CreatedAt:    s.now(),
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.SaveCalculation(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to save calculation",
			"error", err,
			"id", record.ID,
			"years_to_repay", record.YearsToRepay,
		)
	}

	return result, nil
}

// cachedProjection keeps the canonical input next to the result so a
// hash collision is detected instead of served.
type cachedProjection struct {
	Input  string                 `json:"input"`
	Result domain.RepaymentResult `json:"result"`
}

func (s *RepaymentService) project(
	ctx context.Context,
	input domain.RepaymentInput,
) domain.RepaymentResult {

	canonical := canonicalInput(input)
	key := projectionCacheKey(input)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var entry cachedProjection
		err := json.Unmarshal([]byte(cached), &entry)
		if err == nil && entry.Input == canonical && len(entry.Result.RepaymentSchedule) > 0 {
			return entry.Result
		}
		slog.DebugContext(ctx, "discarding unusable cached projection", "key", key)
	}

	result := ProjectWith(s.table, input.Debt, input.Income, input.Growth)

	payload, err := json.Marshal(cachedProjection{Input: canonical, Result: result})
	if err != nil {
		slog.WarnContext(ctx, "failed to encode projection for cache", "error", err)
		return result
	}
	if err := s.cache.Set(ctx, key, string(payload)); err != nil {
		slog.WarnContext(ctx, "failed to cache projection", "error", err, "key", key)
	}

	return result
}

func canonicalInput(input domain.RepaymentInput) string {
	parts := make([]string, 0, 3)
	for _, v := range []float64{input.Debt, input.Income, input.Growth} {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(parts, "|")
}

func projectionCacheKey(input domain.RepaymentInput) string {
	return fmt.Sprintf("projection:%016x", xxhash.Sum64String(canonicalInput(input)))
}
