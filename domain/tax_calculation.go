package domain

import "time"

type ResidencyStatus string

const (
	ResidencyResident        ResidencyStatus = "resident"
	ResidencyForeignResident ResidencyStatus = "foreign-resident"
	ResidencyWorkingHoliday  ResidencyStatus = "working-holiday"
)

func (s ResidencyStatus) Valid() bool {
	switch s {
	case ResidencyResident, ResidencyForeignResident, ResidencyWorkingHoliday:
		return true
	}
	return false
}

type TaxCalculationInput struct {
	Income                float64         `json:"income"`
	TaxYear               string          `json:"taxYear"`
	ResidencyStatus       ResidencyStatus `json:"residencyStatus"`
	MedicareLevyExemption *bool           `json:"medicareLevyExemption,omitempty"`
}

// TaxCalculation is a submission forwarded by the embedded tax widget.
type TaxCalculation struct {
	ID                    string          `json:"id"`
	Income                float64         `json:"income"`
	TaxYear               string          `json:"taxYear"`
	ResidencyStatus       ResidencyStatus `json:"residencyStatus"`
	MedicareLevyExemption bool            `json:"medicareLevyExemption"`
	CreatedAt             time.Time       `json:"createdAt"`
}
