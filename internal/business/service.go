package business

import (
	"errors"
	"fmt"
	"strings"

	"dog-trainers-api/internal/suburb"
	"dog-trainers-api/internal/util"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("business not found")
	ErrInvalidInput = errors.New("invalid business input")
)

type BusinessService struct {
	DB     *gorm.DB
	Bucket string

	// Overridable in tests; defaults to the GCS uploader.
	UploadPhotoFn func(base64Data, bucketName, objectName string) (string, int64, error)
}

func NewBusinessService(db *gorm.DB, bucket string) *BusinessService {
	return &BusinessService{
		DB:            db,
		Bucket:        bucket,
		UploadPhotoFn: util.UploadPhotoToGCS,
	}
}

func validateInput(input BusinessInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	switch input.ResourceType {
	case ResourceTrainer, ResourceBehaviourConsultant, ResourceEmergencyService:
	default:
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, input.ResourceType)
	}

	if input.SuburbID <= 0 {
		return fmt.Errorf("%w: suburb_id is required", ErrInvalidInput)
	}

	if len(input.AgeSpecialties) == 0 || len(input.AgeSpecialties) > MaxAgeSpecialties {
		return fmt.Errorf("%w: between 1 and %d age specialties required", ErrInvalidInput, MaxAgeSpecialties)
	}
	if len(input.BehaviourIssues) > MaxBehaviourIssues {
		return fmt.Errorf("%w: at most %d behaviour issues allowed", ErrInvalidInput, MaxBehaviourIssues)
	}

	if input.Tier != "" && input.Tier != TierBasic && input.Tier != TierPro {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidInput, input.Tier)
	}

	return nil
}

func (bs *BusinessService) CreateBusiness(input BusinessInput) (*Business, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var sb suburb.Suburb
	if err := bs.DB.First(&sb, input.SuburbID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: suburb %d does not exist", ErrInvalidInput, input.SuburbID)
		}
		return nil, err
	}

	tier := input.Tier
	if tier == "" {
		tier = TierBasic
	}

	b := Business{
		Name:             strings.TrimSpace(input.Name),
		ResourceType:     input.ResourceType,
		SuburbID:         sb.ID,
		CouncilID:        sb.CouncilID,
		Region:           sb.Region,
		Email:            input.Email,
		Phone:            input.Phone,
		Website:          input.Website,
		Description:      input.Description,
		AgeSpecialties:   input.AgeSpecialties,
		BehaviourIssues:  input.BehaviourIssues,
		PrimaryService:   input.PrimaryService,
		SecondaryService: input.SecondaryService,
		Tier:             tier,
		Availability:     input.Availability,
	}

	if err := bs.DB.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (bs *BusinessService) GetBusiness(id uint) (*Business, error) {
	var b Business
	err := bs.DB.
		Preload("Suburb").
		Preload("Council").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (bs *BusinessService) UpdateBusiness(id uint, input BusinessInput) (*Business, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	b, err := bs.GetBusiness(id)
	if err != nil {
		return nil, err
	}

	var sb suburb.Suburb
	if err := bs.DB.First(&sb, input.SuburbID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: suburb %d does not exist", ErrInvalidInput, input.SuburbID)
		}
		return nil, err
	}

	b.Name = strings.TrimSpace(input.Name)
	b.ResourceType = input.ResourceType
	b.SuburbID = sb.ID
	b.CouncilID = sb.CouncilID
	b.Region = sb.Region
	b.Email = input.Email
	b.Phone = input.Phone
	b.Website = input.Website
	b.Description = input.Description
	b.AgeSpecialties = input.AgeSpecialties
	b.BehaviourIssues = input.BehaviourIssues
	b.PrimaryService = input.PrimaryService
	b.SecondaryService = input.SecondaryService
	if input.Tier != "" {
		b.Tier = input.Tier
	}
	if input.Availability != nil {
		b.Availability = input.Availability
	}
	b.Suburb = nil
	b.Council = nil

	if err := bs.DB.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBusiness soft-deletes: the row stays for history but drops out of
// every read path.
func (bs *BusinessService) DeleteBusiness(id uint) (*Business, error) {
	b, err := bs.GetBusiness(id)
	if err != nil {
		return nil, err
	}

	b.IsDeleted = true
	b.Suburb = nil
	b.Council = nil
	if err := bs.DB.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (bs *BusinessService) ClaimBusiness(id uint) (*Business, error) {
	b, err := bs.GetBusiness(id)
	if err != nil {
		return nil, err
	}
	if b.Claimed {
		return nil, fmt.Errorf("%w: listing already claimed", ErrInvalidInput)
	}

	b.Claimed = true
	b.Suburb = nil
	b.Council = nil
	if err := bs.DB.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (bs *BusinessService) ListByCouncil(councilID int) ([]Business, error) {
	var out []Business
	err := bs.DB.
		Preload("Suburb").
		Preload("Council").
		Where("council_id = ? AND is_deleted = ?", councilID, false).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (bs *BusinessService) UploadPhoto(id uint, base64Data string) (*Business, error) {
	if strings.TrimSpace(base64Data) == "" {
		return nil, fmt.Errorf("%w: photo payload is required", ErrInvalidInput)
	}

	b, err := bs.GetBusiness(id)
	if err != nil {
		return nil, err
	}

	upload := bs.UploadPhotoFn
	if upload == nil {
		upload = util.UploadPhotoToGCS
	}

	objectName := util.ListingPhotoPrefix(b.ID, b.Name) + "/photo.jpg"
	url, _, err := upload(base64Data, bs.Bucket, objectName)
	if err != nil {
		return nil, err
	}

	b.PhotoURL = &url
	b.Suburb = nil
	b.Council = nil
	if err := bs.DB.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}
