package featured

import (
	"time"
)

const (
	StatusQueued    = "queued"
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// FeaturedPlacement is a paid, time-boxed promotion granting top-of-results
// priority within a council. Purchases enter the council's queue; the sweeper
// moves them through queued -> active -> expired.
type FeaturedPlacement struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID uint `gorm:"not null;index;column:business_id" json:"business_id"`
	CouncilID  int  `gorm:"not null;index;column:council_id" json:"council_id"`

	StartsAt time.Time `gorm:"not null;column:starts_at" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null;column:ends_at" json:"ends_at"`

	Status           string     `gorm:"size:20;not null;default:queued" json:"status"`
	QueuePosition    int        `gorm:"not null;column:queue_position" json:"queue_position"`
	QueueActivatedAt *time.Time `gorm:"column:queue_activated_at" json:"queue_activated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FeaturedPlacement) TableName() string {
	return "featured_placements"
}

type PlacementInput struct {
	BusinessID uint   `json:"business_id"`
	StartsAt   string `json:"starts_at"` // YYYY-MM-DD or RFC3339
	EndsAt     string `json:"ends_at"`
}
