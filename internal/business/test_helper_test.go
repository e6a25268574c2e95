package business

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"dog-trainers-api/internal/logs"
	"dog-trainers-api/internal/suburb"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func assertErr(msg string) error {
	return errors.New(msg)
}

func strPtr(s string) *string {
	return &s
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&suburb.Council{}, &suburb.Suburb{}, &Business{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func seedSuburb(t *testing.T, db *gorm.DB, councilName, suburbName string) (*suburb.Council, *suburb.Suburb) {
	t.Helper()

	cl := suburb.Council{Name: councilName, Region: suburb.RegionMetro}
	if err := db.Create(&cl).Error; err != nil {
		t.Fatalf("seed council: %v", err)
	}
	sb := suburb.Suburb{Name: suburbName, CouncilID: cl.ID, Region: cl.Region}
	if err := db.Create(&sb).Error; err != nil {
		t.Fatalf("seed suburb: %v", err)
	}
	return &cl, &sb
}

func validInput(suburbID int) BusinessInput {
	return BusinessInput{
		Name:           "Happy Paws",
		ResourceType:   ResourceTrainer,
		SuburbID:       suburbID,
		Description:    "Puppy school and obedience",
		AgeSpecialties: []string{"puppy", "adolescent"},
		PrimaryService: "group-classes",
	}
}

type mockBusinessService struct {
	CreateBusinessFn func(input BusinessInput) (*Business, error)
	GetBusinessFn    func(id uint) (*Business, error)
	UpdateBusinessFn func(id uint, input BusinessInput) (*Business, error)
	DeleteBusinessFn func(id uint) (*Business, error)
	ClaimBusinessFn  func(id uint) (*Business, error)
	ListByCouncilFn  func(councilID int) ([]Business, error)
	UploadPhotoFn    func(id uint, base64Data string) (*Business, error)
}

func (m *mockBusinessService) CreateBusiness(input BusinessInput) (*Business, error) {
	if m.CreateBusinessFn == nil {
		return nil, assertErr("CreateBusiness not implemented")
	}
	return m.CreateBusinessFn(input)
}

func (m *mockBusinessService) GetBusiness(id uint) (*Business, error) {
	if m.GetBusinessFn == nil {
		return nil, assertErr("GetBusiness not implemented")
	}
	return m.GetBusinessFn(id)
}

func (m *mockBusinessService) UpdateBusiness(id uint, input BusinessInput) (*Business, error) {
	if m.UpdateBusinessFn == nil {
		return nil, assertErr("UpdateBusiness not implemented")
	}
	return m.UpdateBusinessFn(id, input)
}

func (m *mockBusinessService) DeleteBusiness(id uint) (*Business, error) {
	if m.DeleteBusinessFn == nil {
		return nil, assertErr("DeleteBusiness not implemented")
	}
	return m.DeleteBusinessFn(id)
}

func (m *mockBusinessService) ClaimBusiness(id uint) (*Business, error) {
	if m.ClaimBusinessFn == nil {
		return nil, assertErr("ClaimBusiness not implemented")
	}
	return m.ClaimBusinessFn(id)
}

func (m *mockBusinessService) ListByCouncil(councilID int) ([]Business, error) {
	if m.ListByCouncilFn == nil {
		return nil, assertErr("ListByCouncil not implemented")
	}
	return m.ListByCouncilFn(councilID)
}

func (m *mockBusinessService) UploadPhoto(id uint, base64Data string) (*Business, error) {
	if m.UploadPhotoFn == nil {
		return nil, assertErr("UploadPhoto not implemented")
	}
	return m.UploadPhotoFn(id, base64Data)
}

type mockLogService struct {
	entries []logs.ActivityLog
}

func (m *mockLogService) Log(entry logs.ActivityLog, metadata interface{}) error {
	m.entries = append(m.entries, entry)
	return nil
}
