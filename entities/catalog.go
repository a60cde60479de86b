package entities

type Crop struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null;uniqueIndex:crops_name_key" json:"name"`
	Active          bool   `gorm:"not null" json:"active"`
	TemplateFossID  *uint  `json:"template_foss_id"`
	TemplateSieveID *uint  `json:"template_sieve_id"`
}

func (Crop) TableName() string { return "crops" }

type WeatherCondition struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null;uniqueIndex:weather_name_key" json:"name"`
	Active bool   `gorm:"not null" json:"active"`
}

func (WeatherCondition) TableName() string { return "weather" }
