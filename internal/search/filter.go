package search

import (
	"dog-trainers-api/internal/business"

	"github.com/umahmood/haversine"
)

// MatchesCompatibility is exact set membership, not substring match: the
// business must declare the requested age stage, and the requested behaviour
// issue when one was given.
func MatchesCompatibility(b business.Business, ageStage string, behaviourIssue *string) bool {
	if !containsTag(b.AgeSpecialties, ageStage) {
		return false
	}
	if behaviourIssue != nil && !containsTag(b.BehaviourIssues, *behaviourIssue) {
		return false
	}
	return true
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// MergeTiers combines the three tiers: featured first (in fetch order), then
// pro, then basic, with featured businesses removed from the lower tiers so
// no business appears twice. Pro and basic are mutually exclusive by schema,
// so they only need de-duplication against the featured set.
func MergeTiers(featured, pro, basic []business.Business) []business.Business {
	featuredIDs := make(map[uint]struct{}, len(featured))
	for _, b := range featured {
		featuredIDs[b.ID] = struct{}{}
	}

	merged := make([]business.Business, 0, len(featured)+len(pro)+len(basic))
	merged = append(merged, featured...)
	for _, b := range pro {
		if _, ok := featuredIDs[b.ID]; !ok {
			merged = append(merged, b)
		}
	}
	for _, b := range basic {
		if _, ok := featuredIDs[b.ID]; !ok {
			merged = append(merged, b)
		}
	}
	return merged
}

// FilterByRadius keeps candidates whose suburb lies within radiusKm of the
// origin (inclusive). Pass-through when no radius was requested or the origin
// has no coordinates; candidates without coordinates are excluded.
func FilterByRadius(list []business.Business, originLat, originLng, radiusKm *float64) []business.Business {
	if radiusKm == nil || originLat == nil || originLng == nil {
		return list
	}

	origin := haversine.Coord{Lat: *originLat, Lon: *originLng}

	out := make([]business.Business, 0, len(list))
	for _, b := range list {
		if b.Suburb == nil || b.Suburb.Latitude == nil || b.Suburb.Longitude == nil {
			continue
		}
		_, km := haversine.Distance(origin, haversine.Coord{
			Lat: *b.Suburb.Latitude,
			Lon: *b.Suburb.Longitude,
		})
		if km <= *radiusKm {
			out = append(out, b)
		}
	}
	return out
}

// Paginate slices a 1-based page out of the filtered list. Total always
// reflects the whole filtered list; out-of-range pages yield an empty slice.
func Paginate(list []business.Business, page, limit int) ([]business.Business, int, bool) {
	total := len(list)
	hasMore := page*limit < total

	start := (page - 1) * limit
	if start < 0 || start >= total {
		return []business.Business{}, total, hasMore
	}

	end := start + limit
	if end > total {
		end = total
	}
	return list[start:end], total, hasMore
}
