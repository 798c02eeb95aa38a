package service

import (
	"errors"
	"fmt"
	"math"
)

// Bracket is a closed income interval with its marginal repayment rate.
type Bracket struct {
	Min  float64
	Max  float64
	Rate float64
}

func (b Bracket) contains(income float64) bool {
	return income >= b.Min && income <= b.Max
}

// RateTable is an ordered list of brackets covering every non-negative income.
type RateTable []Bracket

// DefaultRateTable holds the AUD repayment thresholds. It must never be modified.
var DefaultRateTable = RateTable{
	{Min: 0, Max: 54434, Rate: 0.0},
	{Min: 54435, Max: 62850, Rate: 0.01},
	{Min: 62851, Max: 66620, Rate: 0.02},
	{Min: 66621, Max: 70618, Rate: 0.025},
	{Min: 70619, Max: 74855, Rate: 0.03},
	{Min: 74856, Max: 79346, Rate: 0.035},
	{Min: 79347, Max: 84107, Rate: 0.04},
	{Min: 84108, Max: 89154, Rate: 0.045},
	{Min: 89155, Max: 94503, Rate: 0.05},
	{Min: 94504, Max: 100174, Rate: 0.055},
	{Min: 100175, Max: 106185, Rate: 0.06},
	{Min: 106186, Max: 112556, Rate: 0.065},
	{Min: 112557, Max: 119309, Rate: 0.07},
	{Min: 119310, Max: 126467, Rate: 0.075},
	{Min: 126468, Max: 134056, Rate: 0.08},
	{Min: 134057, Max: 142100, Rate: 0.085},
	{Min: 142101, Max: 150626, Rate: 0.09},
	{Min: 150627, Max: 159663, Rate: 0.095},
	{Min: 159664, Max: math.Inf(1), Rate: 0.10},
}

// RateFor returns the marginal rate for income. Incomes that match no
// bracket (negative, NaN or between two integer thresholds) get 0.
func (t RateTable) RateFor(income float64) float64 {
	for _, b := range t {
		if b.contains(income) {
			return b.Rate
		}
	}
	return 0.0
}

// Brackets returns a copy of the table.
func (t RateTable) Brackets() []Bracket {
	out := make([]Bracket, len(t))
	copy(out, t)
	return out
}

// Validate checks the ordering and coverage invariants of the table.
func (t RateTable) Validate() error {
	if len(t) == 0 {
		return errors.New("rate table is empty")
	}
	if t[0].Min != 0 {
		return fmt.Errorf("first bracket must start at 0, got %.2f", t[0].Min)
	}
	for i, b := range t {
		if b.Min > b.Max {
			return fmt.Errorf("bracket %d: min %.2f greater than max %.2f", i, b.Min, b.Max)
		}
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("bracket %d: rate %.4f out of range", i, b.Rate)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if b.Min <= prev.Max {
			return fmt.Errorf("bracket %d overlaps bracket %d", i, i-1)
		}
		if b.Rate < prev.Rate {
			return fmt.Errorf("bracket %d: rate decreases from %.4f to %.4f", i, prev.Rate, b.Rate)
		}
	}
	if last := t[len(t)-1]; !math.IsInf(last.Max, 1) {
		return fmt.Errorf("last bracket must be unbounded, got max %.2f", last.Max)
	}
	return nil
}
