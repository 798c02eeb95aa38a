package domain

import "time"

type RepaymentInput struct {
	Debt   float64 `json:"debt"`
	Income float64 `json:"income"`
	Growth float64 `json:"growth"` // porcentaje anual, 0-100
}

type ScheduleEntry struct {
	Year           int     `json:"year"`
	Income         float64 `json:"income"`
	Repayment      float64 `json:"repayment"`
	TotalRepayment float64 `json:"totalRepayment"`
	RemainingDebt  float64 `json:"remainingDebt"`
}

type RepaymentResult struct {
	YearsToRepay      int             `json:"yearsToRepay"`
	RepaymentSchedule []ScheduleEntry `json:"repaymentSchedule"`
}

// CalculationRecord is what gets persisted for every successful calculation.
type CalculationRecord struct {
	ID           string    `json:"id"`
	Debt         float64   `json:"debt"`
	Income       float64   `json:"income"`
	Growth       float64   `json:"growth"`
	YearsToRepay int       `json:"yearsToRepay"`
	CreatedAt    time.Time `json:"createdAt"`
}
