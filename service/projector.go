package service

import (
	"github.com/shopspring/decimal"

	"hecs-calculator/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales (half away from zero).
func roundTo2Decimals(value float64) float64 {
	f, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return f
}

// Project simulates yearly repayments against DefaultRateTable.
func Project(debt, income, growth float64) domain.RepaymentResult {
	return ProjectWith(DefaultRateTable, debt, income, growth)
}

// ProjectWith simulates yearly repayments until the debt is cleared or
// MaxProjectionYears entries have been produced. Inputs are assumed to be
// validated: debt > 0, income > 0, growth in [0, 100].
func ProjectWith(
	table RateTable,
	debt, income, growth float64,
) domain.RepaymentResult {

	schedule := make([]domain.ScheduleEntry, 0, MaxProjectionYears)
	totalRepayment := 0.0
	currentIncome := income

	for year := 1; totalRepayment < debt && year <= MaxProjectionYears; year++ {
		annualRepayment := currentIncome * table.RateFor(currentIncome)

		// El último pago deja la deuda exactamente en cero
		repaymentThisYear := annualRepayment
		if remaining := debt - totalRepayment; annualRepayment >= remaining {
			repaymentThisYear = remaining
			totalRepayment = debt
		} else {
			totalRepayment += repaymentThisYear
		}

		schedule = append(schedule, domain.ScheduleEntry{
			Year:           year,
			Income:         roundTo2Decimals(currentIncome),
			Repayment:      roundTo2Decimals(repaymentThisYear),
			TotalRepayment: roundTo2Decimals(totalRepayment),
			RemainingDebt:  roundTo2Decimals(debt - totalRepayment),
		})

		currentIncome += currentIncome * (growth / 100)
	}

	return domain.RepaymentResult{
		YearsToRepay:      len(schedule),
		RepaymentSchedule: schedule,
	}
}
