package search

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dog-trainers-api/internal/business"
	"dog-trainers-api/internal/featured"
	"dog-trainers-api/internal/suburb"

	"gorm.io/gorm"
)

var (
	ErrMissingSuburb   = errors.New("suburb is required")
	ErrMissingAgeStage = errors.New("age_stage is required")
	ErrSuburbNotFound  = errors.New("suburb not found")
)

const DefaultLimit = 20

// Emergency services are listed but never ranked; search only surfaces
// trainers and behaviour consultants.
var searchableResourceTypes = []string{
	business.ResourceTrainer,
	business.ResourceBehaviourConsultant,
}

type SearchServiceAPI interface {
	RunPublicSearch(req Request) (*Response, error)
}

type SearchService struct {
	DB *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{DB: db}
}

// RunPublicSearch resolves the suburb, pulls candidates tier by tier, applies
// the compatibility and distance filters in memory, then paginates. A failed
// tier fetch degrades to an empty tier rather than failing the whole search;
// only suburb resolution is fatal.
func (ss *SearchService) RunPublicSearch(req Request) (*Response, error) {
	name := strings.TrimSpace(req.Suburb)
	if name == "" {
		return nil, ErrMissingSuburb
	}
	ageStage := strings.TrimSpace(req.AgeStage)
	if ageStage == "" {
		return nil, ErrMissingAgeStage
	}

	var behaviourIssue *string
	if req.BehaviourIssue != nil {
		if v := strings.TrimSpace(*req.BehaviourIssue); v != "" {
			behaviourIssue = &v
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	sb, err := ss.resolveSuburb(name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	featuredList := ss.fetchFeatured(sb.CouncilID, now, ageStage, behaviourIssue)
	proList := ss.fetchTier(sb.CouncilID, business.TierPro, ageStage, behaviourIssue)
	basicList := ss.fetchTier(sb.CouncilID, business.TierBasic, ageStage, behaviourIssue)

	merged := MergeTiers(featuredList, proList, basicList)
	filtered := FilterByRadius(merged, sb.Latitude, sb.Longitude, req.RadiusKm)
	results, total, hasMore := Paginate(filtered, req.Page, limit)

	return &Response{
		Results: results,
		Total:   total,
		Page:    req.Page,
		Limit:   limit,
		HasMore: hasMore,
		Meta: Meta{
			Suburb:         sb.Name,
			AgeStage:       ageStage,
			BehaviourIssue: behaviourIssue,
			RadiusKm:       req.RadiusKm,
			CouncilID:      sb.CouncilID,
			Region:         sb.Region,
		},
	}, nil
}

func (ss *SearchService) resolveSuburb(name string) (*suburb.Suburb, error) {
	var sb suburb.Suburb
	err := ss.DB.
		Where("LOWER(suburb_name) = ?", strings.ToLower(name)).
		Order("id ASC").
		First(&sb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSuburbNotFound
		}
		return nil, fmt.Errorf("resolve suburb: %w", err)
	}
	return &sb, nil
}

// fetchFeatured returns currently-featured businesses in activation order.
// Placement order is established first, then the backing businesses are
// loaded in one query and reassembled to match it.
func (ss *SearchService) fetchFeatured(councilID int, now time.Time, ageStage string, behaviourIssue *string) []business.Business {
	var placements []featured.FeaturedPlacement
	err := ss.DB.
		Where("council_id = ? AND status = ? AND ends_at > ?", councilID, featured.StatusActive, now).
		Order("queue_activated_at ASC").
		Find(&placements).Error
	if err != nil {
		log.Printf("search: featured fetch failed for council %d: %v", councilID, err)
		return nil
	}
	if len(placements) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(placements))
	for _, p := range placements {
		ids = append(ids, p.BusinessID)
	}

	var rows []business.Business
	err = ss.DB.
		Preload("Suburb").
		Preload("Council").
		Where("id IN ? AND is_deleted = ? AND resource_type IN ?", ids, false, searchableResourceTypes).
		Find(&rows).Error
	if err != nil {
		log.Printf("search: featured business fetch failed for council %d: %v", councilID, err)
		return nil
	}

	byID := make(map[uint]business.Business, len(rows))
	for _, b := range rows {
		byID[b.ID] = b
	}

	out := make([]business.Business, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		b, ok := byID[id]
		if !ok {
			continue
		}
		if MatchesCompatibility(b, ageStage, behaviourIssue) {
			out = append(out, b)
		}
	}
	return out
}

func (ss *SearchService) fetchTier(councilID int, tier string, ageStage string, behaviourIssue *string) []business.Business {
	var rows []business.Business
	err := ss.DB.
		Preload("Suburb").
		Preload("Council").
		Where("council_id = ? AND tier = ? AND is_deleted = ? AND resource_type IN ?",
			councilID, tier, false, searchableResourceTypes).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		log.Printf("search: %s tier fetch failed for council %d: %v", tier, councilID, err)
		return nil
	}

	out := make([]business.Business, 0, len(rows))
	for _, b := range rows {
		if MatchesCompatibility(b, ageStage, behaviourIssue) {
			out = append(out, b)
		}
	}
	return out
}
