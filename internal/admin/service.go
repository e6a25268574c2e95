package admin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"dog-trainers-api/internal/business"
	"dog-trainers-api/internal/featured"
	"dog-trainers-api/internal/suburb"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var ErrInvalidFile = errors.New("invalid spreadsheet")

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (as *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	live := as.DB.Model(&business.Business{}).Where("is_deleted = ?", false)
	if err := live.Count(&stats.TotalBusinesses).Error; err != nil {
		return nil, err
	}
	if err := as.DB.Model(&business.Business{}).
		Where("is_deleted = ? AND claimed = ?", false, true).
		Count(&stats.ClaimedBusinesses).Error; err != nil {
		return nil, err
	}

	if err := as.DB.Model(&business.Business{}).
		Select("tier as key, COUNT(*) as count").
		Where("is_deleted = ?", false).
		Group("tier").
		Order("tier ASC").
		Scan(&stats.ByTier).Error; err != nil {
		return nil, err
	}
	if err := as.DB.Model(&business.Business{}).
		Select("resource_type as key, COUNT(*) as count").
		Where("is_deleted = ?", false).
		Group("resource_type").
		Order("resource_type ASC").
		Scan(&stats.ByResourceType).Error; err != nil {
		return nil, err
	}

	if err := as.DB.Model(&featured.FeaturedPlacement{}).
		Where("status = ?", featured.StatusActive).
		Count(&stats.ActivePlacements).Error; err != nil {
		return nil, err
	}
	if err := as.DB.Model(&featured.FeaturedPlacement{}).
		Where("status = ?", featured.StatusQueued).
		Count(&stats.QueuedPlacements).Error; err != nil {
		return nil, err
	}

	if err := as.DB.Model(&suburb.Council{}).Count(&stats.Councils).Error; err != nil {
		return nil, err
	}
	if err := as.DB.Model(&suburb.Suburb{}).Count(&stats.Suburbs).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// exportRowMap fixes the spreadsheet column order; orderedmap keeps insertion
// order so headers and values stay aligned.
func exportRowMap(b business.Business) *orderedmap.OrderedMap {
	row := orderedmap.New()
	row.Set("id", b.ID)
	row.Set("name", b.Name)
	row.Set("resource_type", b.ResourceType)
	row.Set("tier", b.Tier)

	suburbName, councilName := "", ""
	if b.Suburb != nil {
		suburbName = b.Suburb.Name
	}
	if b.Council != nil {
		councilName = b.Council.Name
	}
	row.Set("suburb", suburbName)
	row.Set("council", councilName)
	row.Set("region", b.Region)

	row.Set("email", strDeref(b.Email))
	row.Set("phone", strDeref(b.Phone))
	row.Set("website", strDeref(b.Website))

	row.Set("age_specialties", strings.Join(b.AgeSpecialties, ","))
	row.Set("behaviour_issues", strings.Join(b.BehaviourIssues, ","))
	row.Set("primary_service", b.PrimaryService)

	row.Set("claimed", b.Claimed)
	row.Set("created_at", b.CreatedAt.Format("2006-01-02"))
	return row
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (as *AdminService) ExportDirectory() (string, string, []byte, error) {
	var businesses []business.Business
	err := as.DB.
		Preload("Suburb").
		Preload("Council").
		Where("is_deleted = ?", false).
		Order("council_id ASC, business_name ASC").
		Find(&businesses).Error
	if err != nil {
		return "", "", nil, err
	}

	f := excelize.NewFile()
	sheet := "Directory"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := exportRowMap(business.Business{}).Keys()
	headerRow := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	_ = f.SetSheetRow(sheet, "A1", &headerRow)

	for i, b := range businesses {
		row := exportRowMap(b)
		values := make([]interface{}, 0, len(headers))
		for _, h := range headers {
			v, _ := row.Get(h)
			values = append(values, v)
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(sheet, cell, &values)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", "", nil, err
	}

	filename := fmt.Sprintf("directory_export_%s.xlsx", time.Now().Format("2006-01-02"))
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, buf.Bytes(), nil
}

// ImportLocalities ingests a suburbs spreadsheet: one row per suburb with
// columns suburb, council, region, latitude, longitude. Councils are created
// on first sight; suburbs already known to their council are counted as
// duplicates and left untouched.
func (as *AdminService) ImportLocalities(r io.Reader) (*ImportSummary, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read spreadsheet: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: no data rows", ErrInvalidFile)
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	suburbCol, okSuburb := col["suburb"]
	councilCol, okCouncil := col["council"]
	if !okSuburb || !okCouncil {
		return nil, fmt.Errorf("%w: suburb and council columns are required", ErrInvalidFile)
	}

	summary := &ImportSummary{}
	councilsByName := map[string]*suburb.Council{}

	for i, row := range rows[1:] {
		rowNum := i + 2

		suburbName := cellAt(row, suburbCol)
		councilName := cellAt(row, councilCol)
		if suburbName == "" || councilName == "" {
			summary.SkippedRows = append(summary.SkippedRows, rowNum)
			continue
		}

		region := cellAt(row, colIdx(col, "region"))
		if !validRegion(region) {
			region = ""
		}

		council, err := as.findOrCreateCouncil(councilName, region, councilsByName, summary)
		if err != nil {
			return nil, err
		}
		if region == "" {
			region = council.Region
		}

		var existing suburb.Suburb
		err = as.DB.
			Where("LOWER(suburb_name) = ? AND council_id = ?", strings.ToLower(suburbName), council.ID).
			First(&existing).Error
		if err == nil {
			summary.DuplicateSuburbs++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		sb := suburb.Suburb{
			Name:      suburbName,
			CouncilID: council.ID,
			Region:    region,
			Latitude:  parseCoord(cellAt(row, colIdx(col, "latitude"))),
			Longitude: parseCoord(cellAt(row, colIdx(col, "longitude"))),
		}
		if err := as.DB.Create(&sb).Error; err != nil {
			return nil, err
		}
		summary.SuburbsCreated++
	}

	return summary, nil
}

func (as *AdminService) findOrCreateCouncil(name, region string, cache map[string]*suburb.Council, summary *ImportSummary) (*suburb.Council, error) {
	key := strings.ToLower(name)
	if c, ok := cache[key]; ok {
		return c, nil
	}

	var existing suburb.Council
	err := as.DB.Where("LOWER(council_name) = ?", key).First(&existing).Error
	if err == nil {
		cache[key] = &existing
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if region == "" {
		region = suburb.RegionMetro
	}
	created := suburb.Council{Name: name, Region: region}
	if err := as.DB.Create(&created).Error; err != nil {
		return nil, err
	}
	summary.CouncilsCreated++
	cache[key] = &created
	return &created, nil
}

func colIdx(col map[string]int, name string) int {
	if i, ok := col[name]; ok {
		return i
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func validRegion(region string) bool {
	switch region {
	case suburb.RegionMetro, suburb.RegionRegional, suburb.RegionRural:
		return true
	}
	return false
}

func parseCoord(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
