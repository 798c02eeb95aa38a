package service

const (
	MaxProjectionYears = 30 // tope de la simulación

	// 30 años duplicando el ingreso no deben desbordar a +Inf
	MaxIncomeAmount = 1e299
	MinGrowthRate   = 0.0
	MaxGrowthRate   = 100.0

	MaxTaxYearLength          = 20
	MaxFeedbackTitleLength    = 200
	MaxFeedbackDescriptionLen = 2000
)
