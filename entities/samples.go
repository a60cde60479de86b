package entities

import "time"

// FossSample is one instrument composition reading taken for a TrenchControl.
type FossSample struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TrenchControlID uint      `gorm:"not null;index" json:"trench_control_id"`
	DateTime        time.Time `json:"date_time"`
	Field           *string   `json:"field"`
	MW              *float64  `gorm:"column:mw" json:"mw"`
	DryMatter       *float64  `json:"dry_matter"`
	Protein         *float64  `json:"protein"`
	Starch          *float64  `json:"starch"`
	ADF             *float64  `gorm:"column:adf" json:"adf"`
	NDF             *float64  `gorm:"column:ndf" json:"ndf"`
	Ash             *float64  `json:"ash"`
	RawFat          *float64  `json:"raw_fat"`
}

func (FossSample) TableName() string { return "foss_data" }

func (s FossSample) Value(f FossField) *float64 {
	switch f {
	case FieldMW:
		return s.MW
	case FieldDryMatter:
		return s.DryMatter
	case FieldProtein:
		return s.Protein
	case FieldStarch:
		return s.Starch
	case FieldADF:
		return s.ADF
	case FieldNDF:
		return s.NDF
	case FieldAsh:
		return s.Ash
	case FieldRawFat:
		return s.RawFat
	}
	return nil
}

// Set assigns a reading; unknown fields are ignored.
func (s *FossSample) Set(f FossField, v *float64) {
	switch f {
	case FieldMW:
		s.MW = v
	case FieldDryMatter:
		s.DryMatter = v
	case FieldProtein:
		s.Protein = v
	case FieldStarch:
		s.Starch = v
	case FieldADF:
		s.ADF = v
	case FieldNDF:
		s.NDF = v
	case FieldAsh:
		s.Ash = v
	case FieldRawFat:
		s.RawFat = v
	}
}

// SieveSample holds grams captured per sieve fraction.
type SieveSample struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TrenchControlID uint      `gorm:"not null;index" json:"trench_control_id"`
	DateTime        time.Time `json:"date_time"`
	MachineOperator *string   `json:"machine_operator"`
	High            *float64  `json:"high"`
	Middle          *float64  `json:"middle"`
	Low             *float64  `json:"low"`
	Pallet          *float64  `json:"pallet"`
}

func (SieveSample) TableName() string { return "sieve" }

func (s SieveSample) Value(f SieveFraction) *float64 {
	switch f {
	case FractionHigh:
		return s.High
	case FractionMiddle:
		return s.Middle
	case FractionLow:
		return s.Low
	case FractionPallet:
		return s.Pallet
	}
	return nil
}
