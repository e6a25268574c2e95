package suburb

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func f64Ptr(f float64) *float64 {
	return &f
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Council{}, &Suburb{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func TestSuburbService_GetAllCouncils_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := &SuburbService{DB: db}

	got, err := svc.GetAllCouncils()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected 0, got %d: %#v", len(got), got)
	}
}

func TestSuburbService_GetAllCouncils_SortedByName(t *testing.T) {
	db := newTestDB(t)
	svc := &SuburbService{DB: db}

	seed := []Council{
		{Name: "Yarra", Region: RegionMetro},
		{Name: "Ballarat", Region: RegionRegional, IsShire: true},
		{Name: "Moreland", Region: RegionMetro},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := svc.GetAllCouncils()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d: %#v", len(got), got)
	}

	if got[0].Name != "Ballarat" || got[1].Name != "Moreland" || got[2].Name != "Yarra" {
		t.Fatalf("unexpected order: %q, %q, %q", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestSuburbService_GetSuburbsByCouncil_FiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	svc := &SuburbService{DB: db}

	c1 := Council{Name: "Yarra", Region: RegionMetro}
	c2 := Council{Name: "Ballarat", Region: RegionRegional}
	if err := db.Create(&c1).Error; err != nil {
		t.Fatalf("seed council1: %v", err)
	}
	if err := db.Create(&c2).Error; err != nil {
		t.Fatalf("seed council2: %v", err)
	}

	seed := []Suburb{
		{Name: "Richmond", CouncilID: c1.ID, Region: RegionMetro, Latitude: f64Ptr(-37.82), Longitude: f64Ptr(145.00)},
		{Name: "Abbotsford", CouncilID: c1.ID, Region: RegionMetro},
		{Name: "Wendouree", CouncilID: c2.ID, Region: RegionRegional},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed suburb: %v", err)
		}
	}

	got, err := svc.GetSuburbsByCouncil(c1.ID)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d: %#v", len(got), got)
	}
	if got[0].Name != "Abbotsford" || got[1].Name != "Richmond" {
		t.Fatalf("unexpected order: %q, %q", got[0].Name, got[1].Name)
	}
	if got[1].Latitude == nil || *got[1].Latitude != -37.82 {
		t.Fatalf("expected Richmond latitude preserved, got %#v", got[1].Latitude)
	}
}

func TestSuburbService_ResolveSuburb_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := &SuburbService{DB: db}

	cl := Council{Name: "Yarra", Region: RegionMetro}
	if err := db.Create(&cl).Error; err != nil {
		t.Fatalf("seed council: %v", err)
	}
	sb := Suburb{Name: "Richmond", CouncilID: cl.ID, Region: RegionMetro}
	if err := db.Create(&sb).Error; err != nil {
		t.Fatalf("seed suburb: %v", err)
	}

	gotSb, gotCl, err := svc.ResolveSuburb("  riCHmond ")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if gotSb.ID != sb.ID {
		t.Fatalf("expected suburb %d, got %d", sb.ID, gotSb.ID)
	}
	if gotCl.ID != cl.ID || gotCl.Name != "Yarra" {
		t.Fatalf("expected council %d Yarra, got %#v", cl.ID, gotCl)
	}
}

func TestSuburbService_ResolveSuburb_DuplicateNames_LowestIDWins(t *testing.T) {
	db := newTestDB(t)
	svc := &SuburbService{DB: db}

	c1 := Council{Name: "Yarra", Region: RegionMetro}
	c2 := Council{Name: "Ballarat", Region: RegionRegional}
	if err := db.Create(&c1).Error; err != nil {
		t.Fatalf("seed council1: %v", err)
	}
	if err := db.Create(&c2).Error; err != nil {
		t.Fatalf("seed council2: %v", err)
	}

	first := Suburb{Name: "Newtown", CouncilID: c1.ID, Region: RegionMetro}
	second := Suburb{Name: "Newtown", CouncilID: c2.ID, Region: RegionRegional}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("seed first: %v", err)
	}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed second: %v", err)
	}

	gotSb, _, err := svc.ResolveSuburb("newtown")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if gotSb.ID != first.ID {
		t.Fatalf("expected first-created suburb %d, got %d", first.ID, gotSb.ID)
	}
}

func TestSuburbService_ResolveSuburb_Unknown_ReturnsErrNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := &SuburbService{DB: db}

	_, _, err := svc.ResolveSuburb("Nonexistent Place")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSuburbService_ResolveSuburb_DBBroken_ReturnsError(t *testing.T) {
	db := newTestDB(t)
	svc := &SuburbService{DB: db}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	_, _, err = svc.ResolveSuburb("Richmond")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("expected upstream error, got ErrNotFound")
	}
}
