package assist

// DescribeInput is the structured listing data a draft description is
// generated from. Name and resource type are mandatory; everything else
// just enriches the prompt.
type DescribeInput struct {
	Name         string `json:"name"`
	ResourceType string `json:"resource_type"`
	Suburb       string `json:"suburb"`

	AgeSpecialties  []string `json:"age_specialties"`
	BehaviourIssues []string `json:"behaviour_issues"`

	PrimaryService   string `json:"primary_service"`
	SecondaryService string `json:"secondary_service"`
}
