package suburb

import (
	"time"
)

const (
	RegionMetro    = "metro"
	RegionRegional = "regional"
	RegionRural    = "rural"
)

type Council struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;column:council_name" json:"name"`
	Region    string    `gorm:"size:50;not null;column:region" json:"region"`
	IsShire   bool      `gorm:"default:false;column:is_shire" json:"is_shire"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Council) TableName() string {
	return "councils"
}

type Suburb struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;column:suburb_name" json:"name"`
	CouncilID int       `gorm:"not null;index;column:council_id" json:"council_id"`
	Region    string    `gorm:"size:50;not null;column:region" json:"region"`
	Latitude  *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude *float64  `gorm:"column:longitude" json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Suburb) TableName() string {
	return "suburbs"
}
