package entities

// TrenchControl is a QC sampling event: edge/middle temperatures and the
// silage mass the sample stands for.
type TrenchControl struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	HarvestID     *uint    `gorm:"index" json:"harvest_id"`
	Date          Date     `json:"date"`
	CropID        *uint    `gorm:"index" json:"crop_id"`
	WeatherID     *uint    `json:"weather_id"`
	LeftEdgeTemp  *float64 `json:"left_edge_temp"`
	MiddleTemp    *float64 `json:"middle_temp"`
	RightEdgeTemp *float64 `json:"right_edge_temp"`
	Weight        *float64 `json:"weight"` // kg
}

func (TrenchControl) TableName() string { return "trench_control" }

func (tc TrenchControl) Temperatures() []*float64 {
	return []*float64{tc.LeftEdgeTemp, tc.MiddleTemp, tc.RightEdgeTemp}
}
