package entities

// FossField names a composition reading of a FossSample, LabEntry or norm.
type FossField string

const (
	FieldMW        FossField = "mw"
	FieldDryMatter FossField = "dry_matter"
	FieldProtein   FossField = "protein"
	FieldStarch    FossField = "starch"
	FieldADF       FossField = "adf"
	FieldNDF       FossField = "ndf"
	FieldAsh       FossField = "ash"
	FieldRawFat    FossField = "raw_fat"
)

// CompositionFields are the seven fields that carry norms and lab references,
// in display order.
var CompositionFields = []FossField{
	FieldDryMatter, FieldProtein, FieldStarch, FieldADF, FieldNDF, FieldAsh, FieldRawFat,
}

// FossFields is CompositionFields plus the moisture-wave reading.
var FossFields = append([]FossField{FieldMW}, CompositionFields...)

// SieveFraction names one sieve level of a SieveSample.
type SieveFraction string

const (
	FractionHigh   SieveFraction = "high"
	FractionMiddle SieveFraction = "middle"
	FractionLow    SieveFraction = "low"
	FractionPallet SieveFraction = "pallet"
)

var SieveFractions = []SieveFraction{FractionHigh, FractionMiddle, FractionLow, FractionPallet}

func ParseFossField(s string) (FossField, bool) {
	for _, f := range FossFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

func ParseSieveFraction(s string) (SieveFraction, bool) {
	for _, f := range SieveFractions {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
