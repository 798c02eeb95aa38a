package service

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_ZeroRateBracketRunsFullTerm(t *testing.T) {
	result := Project(1000, 50000, 0)

	require.Equal(t, MaxProjectionYears, result.YearsToRepay)
	require.Len(t, result.RepaymentSchedule, MaxProjectionYears)
	for _, e := range result.RepaymentSchedule {
		assert.Equal(t, 0.0, e.Repayment)
		assert.Equal(t, 1000.0, e.RemainingDebt)
		assert.Equal(t, 50000.0, e.Income)
	}
}

func TestProject_TwoYearPayoff(t *testing.T) {
	result := Project(1000, 60000, 0)

	require.Equal(t, 2, result.YearsToRepay)
	require.Len(t, result.RepaymentSchedule, 2)

	first := result.RepaymentSchedule[0]
	assert.Equal(t, 1, first.Year)
	assert.Equal(t, 60000.0, first.Income)
	assert.Equal(t, 600.0, first.Repayment)
	assert.Equal(t, 600.0, first.TotalRepayment)
	assert.Equal(t, 400.0, first.RemainingDebt)

	second := result.RepaymentSchedule[1]
	assert.Equal(t, 2, second.Year)
	assert.Equal(t, 60000.0, second.Income)
	assert.Equal(t, 400.0, second.Repayment)
	assert.Equal(t, 1000.0, second.TotalRepayment)
	assert.Equal(t, 0.0, second.RemainingDebt)
}

func TestProject_SingleYearPayoff(t *testing.T) {
	result := Project(500, 60000, 0)

	require.Equal(t, 1, result.YearsToRepay)
	require.Len(t, result.RepaymentSchedule, 1)
	assert.Equal(t, 500.0, result.RepaymentSchedule[0].Repayment)
	assert.Equal(t, 500.0, result.RepaymentSchedule[0].TotalRepayment)
	assert.Equal(t, 0.0, result.RepaymentSchedule[0].RemainingDebt)
}

func TestProject_LargeDebtNeverCleared(t *testing.T) {
	result := Project(1_000_000, 60000, 0)

	require.Equal(t, MaxProjectionYears, result.YearsToRepay)
	last := result.RepaymentSchedule[len(result.RepaymentSchedule)-1]
	assert.Equal(t, 18000.0, last.TotalRepayment)
	assert.Equal(t, 982000.0, last.RemainingDebt)
	assert.Greater(t, last.RemainingDebt, 0.0)
}

func TestProject_IncomeGrowsEachYear(t *testing.T) {
	result := Project(1_000_000, 100000, 5)

	require.GreaterOrEqual(t, len(result.RepaymentSchedule), 3)
	assert.Equal(t, 100000.0, result.RepaymentSchedule[0].Income)
	assert.Equal(t, 105000.0, result.RepaymentSchedule[1].Income)
	assert.Equal(t, 110250.0, result.RepaymentSchedule[2].Income)

	// 100000 sits in the 5.5% bracket, 105000 in the 6% one
	assert.Equal(t, 5500.0, result.RepaymentSchedule[0].Repayment)
	assert.Equal(t, 6300.0, result.RepaymentSchedule[1].Repayment)
}

func TestProject_GrowthMovesIncomeOutOfZeroBracket(t *testing.T) {
	result := Project(2000, 50000, 10)

	first := result.RepaymentSchedule[0]
	assert.Equal(t, 0.0, first.Repayment)
	assert.Less(t, result.YearsToRepay, MaxProjectionYears)

	last := result.RepaymentSchedule[len(result.RepaymentSchedule)-1]
	assert.Equal(t, 0.0, last.RemainingDebt)
	assert.Equal(t, 2000.0, last.TotalRepayment)
}

func TestProject_Idempotent(t *testing.T) {
	a := Project(35000, 72000, 3.5)
	b := Project(35000, 72000, 3.5)
	assert.Equal(t, a, b)
}

func TestProject_ScheduleInvariants(t *testing.T) {
	debts := []float64{1, 500, 25000, 100000, 1_000_000}
	incomes := []float64{1, 54434, 60000, 90000, 150000, 500000}
	growths := []float64{0, 3, 10, 100}

	for _, debt := range debts {
		for _, income := range incomes {
			for _, growth := range growths {
				name := fmt.Sprintf("debt=%g/income=%g/growth=%g", debt, income, growth)
				t.Run(name, func(t *testing.T) {
					result := Project(debt, income, growth)
					schedule := result.RepaymentSchedule

					require.NotEmpty(t, schedule)
					require.Equal(t, len(schedule), result.YearsToRepay)
					require.LessOrEqual(t, result.YearsToRepay, MaxProjectionYears)

					for i, e := range schedule {
						assert.Equal(t, i+1, e.Year)
						assert.GreaterOrEqual(t, e.Repayment, 0.0)
						assert.GreaterOrEqual(t, e.RemainingDebt, 0.0)
						assert.LessOrEqual(t, e.TotalRepayment, debt+0.005)

						if i == 0 {
							continue
						}
						prev := schedule[i-1]
						assert.LessOrEqual(t, e.RemainingDebt, prev.RemainingDebt)
						assert.GreaterOrEqual(t, e.TotalRepayment, prev.TotalRepayment)
						assert.Greater(t, prev.RemainingDebt, 0.0, "no entries after the debt is cleared")
					}

					last := schedule[len(schedule)-1]
					if last.RemainingDebt > 0 {
						assert.Equal(t, MaxProjectionYears, result.YearsToRepay)
					}
				})
			}
		}
	}
}

func TestRateTable_RateFor(t *testing.T) {
	tests := []struct {
		income float64
		want   float64
	}{
		{0, 0},
		{54434, 0},
		{54434.5, 0}, // between brackets
		{54435, 0.01},
		{62850, 0.01},
		{62851, 0.02},
		{100174, 0.055},
		{100175, 0.06},
		{159663, 0.095},
		{159664, 0.10},
		{10_000_000, 0.10},
		{-1, 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%g", tt.income), func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultRateTable.RateFor(tt.income))
		})
	}
}

func TestRateTable_DefaultIsValid(t *testing.T) {
	require.NoError(t, DefaultRateTable.Validate())
	assert.Len(t, DefaultRateTable, 19)
}

func TestRateTable_Validate(t *testing.T) {
	tests := []struct {
		name  string
		table RateTable
	}{
		{"empty", RateTable{}},
		{"does not start at zero", RateTable{{Min: 10, Max: math.Inf(1), Rate: 0}}},
		{"bounded", RateTable{{Min: 0, Max: 100, Rate: 0}}},
		{"overlap", RateTable{{Min: 0, Max: 100, Rate: 0}, {Min: 50, Max: math.Inf(1), Rate: 0.1}}},
		{"decreasing rate", RateTable{{Min: 0, Max: 100, Rate: 0.2}, {Min: 101, Max: math.Inf(1), Rate: 0.1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.table.Validate())
		})
	}
}

func TestRateTable_BracketsReturnsCopy(t *testing.T) {
	brackets := DefaultRateTable.Brackets()
	brackets[0].Rate = 0.5

	assert.Equal(t, 0.0, DefaultRateTable[0].Rate)
}

func TestRoundTo2Decimals(t *testing.T) {
	assert.Equal(t, 1.01, roundTo2Decimals(1.005))
	assert.Equal(t, 2.68, roundTo2Decimals(2.675))
	assert.Equal(t, 0.0, roundTo2Decimals(0.004))
	assert.Equal(t, -1.5, roundTo2Decimals(-1.499999))
}
