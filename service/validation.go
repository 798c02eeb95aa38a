package service

import (
	"fmt"
	"math"
	"strings"

	"hecs-calculator/domain"
)

// ValidationError reports rejected user input. Messages are safe to show
// to the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateRepaymentInput rejects inputs outside the projector's domain.
// Fields are checked in request order so the first error is stable.
func ValidateRepaymentInput(input domain.RepaymentInput) error {
	if !finite(input.Debt) || input.Debt <= 0 {
		return invalid("debt", "Debt must be a number greater than 0.")
	}
	if !finite(input.Income) || input.Income <= 0 {
		return invalid("income", "Income must be a number greater than 0.")
	}
	if input.Income > MaxIncomeAmount {
		return invalid("income", "Income must not exceed %g.", MaxIncomeAmount)
	}
	if !finite(input.Growth) || input.Growth < MinGrowthRate || input.Growth > MaxGrowthRate {
		return invalid("growth", "Growth must be a number between 0 and 100.")
	}
	return nil
}

func validateTaxCalculationInput(input domain.TaxCalculationInput) error {
	if !finite(input.Income) || input.Income < 0 {
		return invalid("income", "Income cannot be negative.")
	}
	taxYear := strings.TrimSpace(input.TaxYear)
	if taxYear == "" {
		return invalid("taxYear", "Tax year is required.")
	}
	if len(taxYear) > MaxTaxYearLength {
		return invalid("taxYear", "Tax year must be at most %d characters.", MaxTaxYearLength)
	}
	if !input.ResidencyStatus.Valid() {
		return invalid("residencyStatus", "Residency status must be one of resident, foreign-resident, working-holiday.")
	}
	return nil
}

func validateFeedbackInput(input domain.FeedbackInput) error {
	if !input.Type.Valid() {
		return invalid("type", "Feedback type must be one of bug, feature, general.")
	}
	if input.Title == "" {
		return invalid("title", "Title is required.")
	}
	if len([]rune(input.Title)) > MaxFeedbackTitleLength {
		return invalid("title", "Title must be at most %d characters.", MaxFeedbackTitleLength)
	}
	if input.Description == "" {
		return invalid("description", "Description is required.")
	}
	if len([]rune(input.Description)) > MaxFeedbackDescriptionLen {
		return invalid("description", "Description must be at most %d characters.", MaxFeedbackDescriptionLen)
	}
	if input.Email != "" && !emailPattern.MatchString(input.Email) {
		return invalid("email", "Please enter a valid email address.")
	}
	return nil
}
