package business

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dog-trainers-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type LogServicePort interface {
	Log(entry logs.ActivityLog, metadata interface{}) error
}

type BusinessController struct {
	Service    BusinessServicePort
	LogService LogServicePort
}

func (bc *BusinessController) parseID(c *gin.Context) (uint, bool) {
	idStr := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid business id is required"})
		return 0, false
	}
	return uint(id), true
}

func (bc *BusinessController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (bc *BusinessController) logAction(b *Business, action, message string) {
	if bc.LogService == nil || b == nil {
		return
	}
	id := b.ID
	_ = bc.LogService.Log(logs.ActivityLog{
		Level:      "info",
		Service:    "business",
		Action:     action,
		Message:    message,
		BusinessID: &id,
	}, map[string]interface{}{"tier": b.Tier, "council_id": b.CouncilID})
}

func (bc *BusinessController) CreateBusiness(c *gin.Context) {
	var input BusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := bc.Service.CreateBusiness(input)
	if err != nil {
		bc.writeError(c, err)
		return
	}

	bc.logAction(b, "listing_created", "listing created: "+b.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Listing created successfully",
		"business": b,
	})
}

func (bc *BusinessController) GetBusiness(c *gin.Context) {
	id, ok := bc.parseID(c)
	if !ok {
		return
	}

	b, err := bc.Service.GetBusiness(id)
	if err != nil {
		bc.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Listing fetched successfully",
		"business": b,
	})
}

func (bc *BusinessController) UpdateBusiness(c *gin.Context) {
	id, ok := bc.parseID(c)
	if !ok {
		return
	}

	var input BusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := bc.Service.UpdateBusiness(id, input)
	if err != nil {
		bc.writeError(c, err)
		return
	}

	bc.logAction(b, "listing_updated", "listing updated: "+b.Name)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Listing updated successfully",
		"business": b,
	})
}

func (bc *BusinessController) DeleteBusiness(c *gin.Context) {
	id, ok := bc.parseID(c)
	if !ok {
		return
	}

	b, err := bc.Service.DeleteBusiness(id)
	if err != nil {
		bc.writeError(c, err)
		return
	}

	bc.logAction(b, "listing_deleted", "listing deleted: "+b.Name)

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing deleted successfully",
	})
}

func (bc *BusinessController) ClaimBusiness(c *gin.Context) {
	id, ok := bc.parseID(c)
	if !ok {
		return
	}

	b, err := bc.Service.ClaimBusiness(id)
	if err != nil {
		bc.writeError(c, err)
		return
	}

	bc.logAction(b, "listing_claimed", "listing claimed: "+b.Name)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Listing claimed successfully",
		"business": b,
	})
}

func (bc *BusinessController) ListByCouncil(c *gin.Context) {
	councilIDStr := strings.TrimSpace(c.Param("council"))
	councilID, err := strconv.Atoi(councilIDStr)
	if err != nil || councilID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid council id is required"})
		return
	}

	businesses, err := bc.Service.ListByCouncil(councilID)
	if err != nil {
		bc.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Listings fetched successfully",
		"businesses": businesses,
	})
}

func (bc *BusinessController) UploadPhoto(c *gin.Context) {
	id, ok := bc.parseID(c)
	if !ok {
		return
	}

	var input PhotoUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := bc.Service.UploadPhoto(id, input.PhotoBase64)
	if err != nil {
		bc.writeError(c, err)
		return
	}

	bc.logAction(b, "photo_uploaded", "listing photo uploaded: "+b.Name)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Photo uploaded successfully",
		"business": b,
	})
}
