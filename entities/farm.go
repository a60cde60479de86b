package entities

type Farm struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex:farms_name_key" json:"name"`
}

func (Farm) TableName() string { return "farms" }

type Trench struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	FarmID uint   `gorm:"not null;uniqueIndex:trenches_farm_name_uniq" json:"farm_id"`
	Name   string `gorm:"not null;uniqueIndex:trenches_farm_name_uniq" json:"name"`
}

func (Trench) TableName() string { return "trenches" }

// Harvest is one numbered cut of a trench within a season.
type Harvest struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TrenchID   uint `gorm:"not null;uniqueIndex:trenches_harvest_uniq" json:"trench_id"`
	Season     int  `gorm:"not null;uniqueIndex:trenches_harvest_uniq" json:"season"`
	Harvesting int  `gorm:"not null;uniqueIndex:trenches_harvest_uniq" json:"harvesting"`
}

func (Harvest) TableName() string { return "harvest" }
