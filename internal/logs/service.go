package logs

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"dog-trainers-api/internal/util"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

func (ls *LogService) Log(entry ActivityLog, metadata interface{}) error {
	var metaStr *string

	// Convert metadata (map/struct) to JSON string if provided
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			str := string(b)
			metaStr = &str
		}
	}

	newLog := ActivityLog{
		Level:      entry.Level,
		Service:    entry.Service,
		Action:     entry.Action,
		Message:    entry.Message,
		BusinessID: entry.BusinessID,
		Councils:   entry.Councils,
		Metadata:   metaStr,
		CreatedAt:  time.Now(),
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]ActivityLog, LogAggregates, int64, int, error) {
	// Defaults
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 20
	}

	base := ls.DB.Table("activity_logs")

	// Default: last 30 days if no dates
	if input.StartDate == nil && input.EndDate == nil {
		base = base.Where("activity_logs.created_at >= ?", time.Now().AddDate(0, 0, -30))
	}

	// Filters
	if input.BusinessID != nil {
		base = base.Where("activity_logs.business_id = ?", *input.BusinessID)
	}
	if input.Level != nil && strings.TrimSpace(*input.Level) != "" {
		base = base.Where("activity_logs.level = ?", strings.TrimSpace(*input.Level))
	}
	if input.Service != nil && strings.TrimSpace(*input.Service) != "" {
		base = base.Where("activity_logs.service = ?", strings.TrimSpace(*input.Service))
	}
	if input.Action != nil && strings.TrimSpace(*input.Action) != "" {
		base = base.Where("activity_logs.action = ?", strings.TrimSpace(*input.Action))
	}

	// Councils filter: overlap (ANY match) - optional
	if len(input.Councils) > 0 {
		base = base.Where("activity_logs.councils && ?", pq.Array(input.Councils))
	}

	// Date range (inclusive end-day)
	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}
	if hasStart {
		base = base.Where("activity_logs.created_at >= ?", start)
	}
	if hasEnd {
		base = base.Where("activity_logs.created_at < ?", endExclusive)
	}

	if input.Search != nil && strings.TrimSpace(*input.Search) != "" {
		like := "%" + strings.TrimSpace(*input.Search) + "%"
		base = base.Where(
			`CAST(activity_logs.id AS TEXT) ILIKE ?
			 OR activity_logs.level ILIKE ?
			 OR activity_logs.service ILIKE ?
			 OR activity_logs.action ILIKE ?
			 OR activity_logs.message ILIKE ?
			 OR COALESCE(array_to_string(activity_logs.councils, ','),'') ILIKE ?`,
			like, like, like, like, like, like,
		)
	}

	// Total count (no paging)
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(input.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	var rows []ActivityLog
	if err := base.
		Session(&gorm.Session{}).
		Order("activity_logs.created_at DESC").
		Limit(input.PageSize).
		Offset((input.Page - 1) * input.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	aggs, err := ls.getAggregatesFromBase(base)
	if err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	return rows, aggs, total, totalPages, nil
}

func (ls *LogService) getAggregatesFromBase(base *gorm.DB) (LogAggregates, error) {
	aggs := LogAggregates{}
	limit := 12

	// Derived table so aggregate filters are identical to the row filters
	sub := base.Session(&gorm.Session{}).
		Select("activity_logs.action, activity_logs.service")

	derived := ls.DB.Table("(?) as x", sub)

	{
		type r struct {
			Label string
			Count int64
		}
		var out []r

		if err := derived.Session(&gorm.Session{}).
			Select("x.action AS label, COUNT(*) AS count").
			Group("label").
			Order("count DESC").
			Limit(limit).
			Scan(&out).Error; err != nil {
			return LogAggregates{}, err
		}

		aggs.ByAction = make([]AggItem, 0, len(out))
		for _, row := range out {
			aggs.ByAction = append(aggs.ByAction, AggItem{Label: row.Label, Count: row.Count})
		}
	}

	{
		type r struct {
			Label string
			Count int64
		}
		var out []r

		if err := derived.Session(&gorm.Session{}).
			Select("x.service AS label, COUNT(*) AS count").
			Group("label").
			Order("count DESC").
			Limit(limit).
			Scan(&out).Error; err != nil {
			return LogAggregates{}, err
		}

		aggs.ByService = make([]AggItem, 0, len(out))
		for _, row := range out {
			aggs.ByService = append(aggs.ByService, AggItem{Label: row.Label, Count: row.Count})
		}
	}

	return aggs, nil
}
