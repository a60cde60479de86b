package entities

// LabEntry is the certified reference analysis of a harvest.
type LabEntry struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	HarvestID uint     `gorm:"not null;index" json:"harvest_id"`
	DryMatter *float64 `json:"dry_matter"`
	Protein   *float64 `json:"protein"`
	Starch    *float64 `json:"starch"`
	ADF       *float64 `gorm:"column:adf" json:"adf"`
	NDF       *float64 `gorm:"column:ndf" json:"ndf"`
	Ash       *float64 `json:"ash"`
	RawFat    *float64 `json:"raw_fat"`
}

func (LabEntry) TableName() string { return "lab_data" }

func (l LabEntry) Value(f FossField) *float64 {
	switch f {
	case FieldDryMatter:
		return l.DryMatter
	case FieldProtein:
		return l.Protein
	case FieldStarch:
		return l.Starch
	case FieldADF:
		return l.ADF
	case FieldNDF:
		return l.NDF
	case FieldAsh:
		return l.Ash
	case FieldRawFat:
		return l.RawFat
	}
	return nil
}
