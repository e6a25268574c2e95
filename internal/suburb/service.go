package suburb

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("suburb not found")

type SuburbServiceAPI interface {
	GetAllCouncils() ([]Council, error)
	GetSuburbsByCouncil(councilID int) ([]Suburb, error)
	ResolveSuburb(name string) (*Suburb, *Council, error)
}

type SuburbService struct {
	DB *gorm.DB
}

func NewSuburbService(db *gorm.DB) *SuburbService {
	return &SuburbService{DB: db}
}

func (ss *SuburbService) GetAllCouncils() ([]Council, error) {
	var councils []Council
	result := ss.DB.Order("council_name ASC").Find(&councils)
	if result.Error != nil {
		return nil, result.Error
	}
	return councils, nil
}

func (ss *SuburbService) GetSuburbsByCouncil(councilID int) ([]Suburb, error) {
	var suburbs []Suburb
	result := ss.DB.
		Where("council_id = ?", councilID).
		Order("suburb_name ASC").
		Find(&suburbs)

	if result.Error != nil {
		return nil, result.Error
	}
	return suburbs, nil
}

// ResolveSuburb maps a free-text suburb name to its record and owning council.
// Matching is case-insensitive and exact; when several suburbs share a name
// the lowest id wins, so identical requests always resolve the same way.
func (ss *SuburbService) ResolveSuburb(name string) (*Suburb, *Council, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ErrNotFound
	}

	var sb Suburb
	result := ss.DB.
		Where("LOWER(suburb_name) = ?", strings.ToLower(name)).
		Order("id ASC").
		First(&sb)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, result.Error
	}

	var cl Council
	if err := ss.DB.First(&cl, sb.CouncilID).Error; err != nil {
		return nil, nil, err
	}

	return &sb, &cl, nil
}
