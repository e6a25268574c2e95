package admin

type AggKV struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type DashboardStats struct {
	TotalBusinesses   int64 `json:"total_businesses"`
	ClaimedBusinesses int64 `json:"claimed_businesses"`

	ByTier         []AggKV `json:"by_tier"`
	ByResourceType []AggKV `json:"by_resource_type"`

	ActivePlacements int64 `json:"active_placements"`
	QueuedPlacements int64 `json:"queued_placements"`

	Councils int64 `json:"councils"`
	Suburbs  int64 `json:"suburbs"`
}

// ImportSummary reports what a locality spreadsheet upload actually did.
// Skipped rows are 1-based spreadsheet row numbers.
type ImportSummary struct {
	CouncilsCreated  int   `json:"councils_created"`
	SuburbsCreated   int   `json:"suburbs_created"`
	DuplicateSuburbs int   `json:"duplicate_suburbs"`
	SkippedRows      []int `json:"skipped_rows,omitempty"`
}
