package business

import (
	"time"

	"dog-trainers-api/internal/suburb"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	ResourceTrainer             = "trainer"
	ResourceBehaviourConsultant = "behaviour-consultant"
	ResourceEmergencyService    = "emergency-service"

	TierBasic = "basic"
	TierPro   = "pro"
)

// MaxAgeSpecialties and MaxBehaviourIssues mirror the column constraints.
const (
	MaxAgeSpecialties  = 5
	MaxBehaviourIssues = 10
)

type Business struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:255;not null;column:business_name" json:"name"`
	ResourceType string `gorm:"size:50;not null;column:resource_type" json:"resource_type"`

	SuburbID  int    `gorm:"not null;index;column:suburb_id" json:"suburb_id"`
	CouncilID int    `gorm:"not null;index;column:council_id" json:"council_id"`
	Region    string `gorm:"size:50;not null;column:region" json:"region"`

	Email       *string `gorm:"size:255" json:"email,omitempty"`
	Phone       *string `gorm:"size:50" json:"phone,omitempty"`
	Website     *string `gorm:"size:512" json:"website,omitempty"`
	Description string  `gorm:"type:text" json:"description"`

	AgeSpecialties  pq.StringArray `gorm:"type:text[];column:age_specialties" json:"age_specialties"`
	BehaviourIssues pq.StringArray `gorm:"type:text[];column:behaviour_issues" json:"behaviour_issues"`

	PrimaryService   string  `gorm:"size:100;column:primary_service" json:"primary_service"`
	SecondaryService *string `gorm:"size:100;column:secondary_service" json:"secondary_service,omitempty"`

	Tier         string         `gorm:"size:20;not null;default:basic" json:"tier"`
	Claimed      bool           `gorm:"default:false" json:"claimed"`
	PhotoURL     *string        `gorm:"size:1024;column:photo_url" json:"photo_url,omitempty"`
	Availability datatypes.JSON `gorm:"column:availability" json:"availability,omitempty"`

	IsDeleted bool      `gorm:"default:false;column:is_deleted" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Suburb  *suburb.Suburb  `gorm:"foreignKey:SuburbID" json:"suburb,omitempty"`
	Council *suburb.Council `gorm:"foreignKey:CouncilID" json:"council,omitempty"`
}

func (Business) TableName() string {
	return "businesses"
}

type BusinessInput struct {
	Name         string `json:"name"`
	ResourceType string `json:"resource_type"`
	SuburbID     int    `json:"suburb_id"`

	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
	Description string  `json:"description"`

	AgeSpecialties  []string `json:"age_specialties"`
	BehaviourIssues []string `json:"behaviour_issues"`

	PrimaryService   string  `json:"primary_service"`
	SecondaryService *string `json:"secondary_service"`

	Tier         string         `json:"tier"`
	Availability datatypes.JSON `json:"availability"`
}

type PhotoUploadInput struct {
	PhotoBase64 string `json:"photo_base64"`
}
