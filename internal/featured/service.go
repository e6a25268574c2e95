package featured

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dog-trainers-api/internal/business"
	"dog-trainers-api/internal/util"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("placement not found")
	ErrInvalidInput = errors.New("invalid placement input")
)

type FeaturedServiceAPI interface {
	CreatePlacement(input PlacementInput) (*FeaturedPlacement, error)
	ListByCouncil(councilID int) ([]FeaturedPlacement, error)
	CancelPlacement(id uint) (*FeaturedPlacement, error)
	Sweep(now time.Time) (activated int, expired int, err error)
}

type FeaturedService struct {
	DB *gorm.DB
}

func NewFeaturedService(db *gorm.DB) *FeaturedService {
	return &FeaturedService{DB: db}
}

// CreatePlacement enqueues a purchased placement at the tail of the
// business's council queue. Activation is the sweeper's job.
func (fs *FeaturedService) CreatePlacement(input PlacementInput) (*FeaturedPlacement, error) {
	if input.BusinessID == 0 {
		return nil, fmt.Errorf("%w: business_id is required", ErrInvalidInput)
	}

	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(&input.StartsAt, &input.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !hasStart || !hasEnd {
		return nil, fmt.Errorf("%w: starts_at and ends_at are required", ErrInvalidInput)
	}
	if !start.Before(endExclusive) {
		return nil, fmt.Errorf("%w: validity window is empty", ErrInvalidInput)
	}

	var b business.Business
	if err := fs.DB.Where("id = ? AND is_deleted = ?", input.BusinessID, false).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: business %d does not exist", ErrInvalidInput, input.BusinessID)
		}
		return nil, err
	}

	// Tail of the council queue, counting only placements still in play.
	var maxPos sql.NullInt64
	err = fs.DB.Model(&FeaturedPlacement{}).
		Where("council_id = ? AND status IN ?", b.CouncilID, []string{StatusQueued, StatusActive}).
		Select("MAX(queue_position)").
		Scan(&maxPos).Error
	if err != nil {
		return nil, err
	}
	pos := 1
	if maxPos.Valid {
		pos = int(maxPos.Int64) + 1
	}

	p := FeaturedPlacement{
		BusinessID:    b.ID,
		CouncilID:     b.CouncilID,
		StartsAt:      start,
		EndsAt:        endExclusive,
		Status:        StatusQueued,
		QueuePosition: pos,
	}

	if err := fs.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (fs *FeaturedService) ListByCouncil(councilID int) ([]FeaturedPlacement, error) {
	var out []FeaturedPlacement
	err := fs.DB.
		Where("council_id = ?", councilID).
		Order("queue_position ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (fs *FeaturedService) CancelPlacement(id uint) (*FeaturedPlacement, error) {
	var p FeaturedPlacement
	if err := fs.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if p.Status == StatusExpired || p.Status == StatusCancelled {
		return nil, fmt.Errorf("%w: placement is already %s", ErrInvalidInput, p.Status)
	}

	p.Status = StatusCancelled
	if err := fs.DB.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Sweep advances placement lifecycles: queued placements whose window has
// opened become active (earliest queue position first, stamping
// queue_activated_at), and anything past its window expires.
func (fs *FeaturedService) Sweep(now time.Time) (int, int, error) {
	activated := 0
	expired := 0

	var due []FeaturedPlacement
	err := fs.DB.
		Where("status = ? AND starts_at <= ? AND ends_at > ?", StatusQueued, now, now).
		Order("queue_position ASC").
		Find(&due).Error
	if err != nil {
		return 0, 0, err
	}

	for i := range due {
		// Distinct activation stamps keep the featured ordering stable.
		ts := now.Add(time.Duration(i) * time.Microsecond)
		due[i].Status = StatusActive
		due[i].QueueActivatedAt = &ts
		if err := fs.DB.Save(&due[i]).Error; err != nil {
			return activated, expired, err
		}
		activated++
	}

	var past []FeaturedPlacement
	err = fs.DB.
		Where("status IN ? AND ends_at <= ?", []string{StatusQueued, StatusActive}, now).
		Find(&past).Error
	if err != nil {
		return activated, expired, err
	}

	for i := range past {
		past[i].Status = StatusExpired
		if err := fs.DB.Save(&past[i]).Error; err != nil {
			return activated, expired, err
		}
		expired++
	}

	return activated, expired, nil
}
