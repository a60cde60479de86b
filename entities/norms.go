package entities

import "fmt"

// FossLimits holds the lower/upper bound pair of every composition field.
// A nil bound means no limit on that side.
type FossLimits struct {
	DryMatterLowerLimit *float64 `json:"dry_matter_lower_limit"`
	DryMatterUpperLimit *float64 `json:"dry_matter_upper_limit"`
	ProteinLowerLimit   *float64 `json:"protein_lower_limit"`
	ProteinUpperLimit   *float64 `json:"protein_upper_limit"`
	StarchLowerLimit    *float64 `json:"starch_lower_limit"`
	StarchUpperLimit    *float64 `json:"starch_upper_limit"`
	ADFLowerLimit       *float64 `gorm:"column:adf_lower_limit" json:"adf_lower_limit"`
	ADFUpperLimit       *float64 `gorm:"column:adf_upper_limit" json:"adf_upper_limit"`
	NDFLowerLimit       *float64 `gorm:"column:ndf_lower_limit" json:"ndf_lower_limit"`
	NDFUpperLimit       *float64 `gorm:"column:ndf_upper_limit" json:"ndf_upper_limit"`
	AshLowerLimit       *float64 `json:"ash_lower_limit"`
	AshUpperLimit       *float64 `json:"ash_upper_limit"`
	RawFatLowerLimit    *float64 `json:"raw_fat_lower_limit"`
	RawFatUpperLimit    *float64 `json:"raw_fat_upper_limit"`
}

func (l FossLimits) Bounds(f FossField) (lower, upper *float64) {
	switch f {
	case FieldDryMatter:
		return l.DryMatterLowerLimit, l.DryMatterUpperLimit
	case FieldProtein:
		return l.ProteinLowerLimit, l.ProteinUpperLimit
	case FieldStarch:
		return l.StarchLowerLimit, l.StarchUpperLimit
	case FieldADF:
		return l.ADFLowerLimit, l.ADFUpperLimit
	case FieldNDF:
		return l.NDFLowerLimit, l.NDFUpperLimit
	case FieldAsh:
		return l.AshLowerLimit, l.AshUpperLimit
	case FieldRawFat:
		return l.RawFatLowerLimit, l.RawFatUpperLimit
	}
	return nil, nil
}

// Check reports the first field whose lower bound exceeds its upper bound.
func (l FossLimits) Check() error {
	for _, f := range CompositionFields {
		if err := checkPair(string(f), l.Bounds); err != nil {
			return err
		}
	}
	return nil
}

// SieveLimits are percentage-of-total bounds per sieve fraction.
type SieveLimits struct {
	HighLowerLimit   *float64 `json:"high_lower_limit"`
	HighUpperLimit   *float64 `json:"high_upper_limit"`
	MiddleLowerLimit *float64 `json:"middle_lower_limit"`
	MiddleUpperLimit *float64 `json:"middle_upper_limit"`
	LowLowerLimit    *float64 `json:"low_lower_limit"`
	LowUpperLimit    *float64 `json:"low_upper_limit"`
	PalletLowerLimit *float64 `json:"pallet_lower_limit"`
	PalletUpperLimit *float64 `json:"pallet_upper_limit"`
}

func (l SieveLimits) Bounds(f SieveFraction) (lower, upper *float64) {
	switch f {
	case FractionHigh:
		return l.HighLowerLimit, l.HighUpperLimit
	case FractionMiddle:
		return l.MiddleLowerLimit, l.MiddleUpperLimit
	case FractionLow:
		return l.LowLowerLimit, l.LowUpperLimit
	case FractionPallet:
		return l.PalletLowerLimit, l.PalletUpperLimit
	}
	return nil, nil
}

func (l SieveLimits) Check() error {
	for _, f := range SieveFractions {
		if err := checkPair(string(f), l.Bounds); err != nil {
			return err
		}
	}
	return nil
}

func checkPair[F ~string](name string, bounds func(F) (*float64, *float64)) error {
	lo, hi := bounds(F(name))
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Errorf("%s_lower_limit %.2f is greater than %s_upper_limit %.2f", name, *lo, name, *hi)
	}
	return nil
}

type CropFossNorm struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	CropID uint `gorm:"not null;index" json:"crop_id"`
	FossLimits
}

func (CropFossNorm) TableName() string { return "foss_norms" }

func (n CropFossNorm) Crop() uint { return n.CropID }

type CropSieveNorm struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	CropID uint `gorm:"not null;index" json:"crop_id"`
	SieveLimits
}

func (CropSieveNorm) TableName() string { return "sieve_norms" }

func (n CropSieveNorm) Crop() uint { return n.CropID }

// FossTemplate is a reusable, crop-independent set of composition limits.
type FossTemplate struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex:foss_norms_template_name_key" json:"name"`
	FossLimits
}

func (FossTemplate) TableName() string { return "foss_norms_template" }

type SieveTemplate struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex:sieve_norms_template_name_key" json:"name"`
	SieveLimits
}

func (SieveTemplate) TableName() string { return "sieve_norms_template" }
