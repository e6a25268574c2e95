package search

import (
	"dog-trainers-api/internal/business"
)

// Request carries the public search parameters. Page is 1-based; pages <= 0
// or past the end of the result set come back as an empty page, not an error.
type Request struct {
	Suburb         string
	AgeStage       string
	BehaviourIssue *string
	RadiusKm       *float64
	Page           int
	Limit          int
}

// Meta echoes the filters actually applied to a search.
type Meta struct {
	Suburb         string   `json:"suburb"`
	AgeStage       string   `json:"age_stage"`
	BehaviourIssue *string  `json:"behaviour_issue"`
	RadiusKm       *float64 `json:"radius_km"`
	CouncilID      int      `json:"council_id"`
	Region         string   `json:"region"`
}

type Response struct {
	Results []business.Business `json:"results"`
	Total   int                 `json:"total"`
	Page    int                 `json:"page"`
	Limit   int                 `json:"limit"`
	HasMore bool                `json:"has_more"`
	Meta    Meta                `json:"meta"`
}
