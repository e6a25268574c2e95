package logs

import (
	"time"

	"github.com/lib/pq"
)

type ActivityLog struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Level      string         `gorm:"size:20;not null" json:"level"`
	Service    string         `gorm:"size:100;not null" json:"service"`
	Action     string         `gorm:"size:255;not null" json:"action"`
	Message    string         `gorm:"type:text;not null" json:"message"`
	BusinessID *uint          `gorm:"index" json:"business_id,omitempty"`
	Councils   pq.StringArray `gorm:"type:text[];column:councils" json:"councils"`
	Metadata   *string        `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

type LogFilterInput struct {
	BusinessID *uint    `json:"business_id"`
	Level      *string  `json:"level"`
	Service    *string  `json:"service"`
	Action     *string  `json:"action"`
	Councils   []string `json:"councils"`

	StartDate *string `json:"start_date"` // "YYYY-MM-DD"
	EndDate   *string `json:"end_date"`   // "YYYY-MM-DD"

	Search   *string `json:"search"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

type AggItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type LogAggregates struct {
	ByAction  []AggItem `json:"by_action"`
	ByService []AggItem `json:"by_service"`
}
