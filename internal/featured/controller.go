package featured

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type FeaturedController struct {
	Service FeaturedServiceAPI
}

func (fc *FeaturedController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (fc *FeaturedController) CreatePlacement(c *gin.Context) {
	var input PlacementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := fc.Service.CreatePlacement(input)
	if err != nil {
		fc.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Placement queued successfully",
		"placement": p,
	})
}

func (fc *FeaturedController) ListByCouncil(c *gin.Context) {
	councilIDStr := strings.TrimSpace(c.Param("council"))
	councilID, err := strconv.Atoi(councilIDStr)
	if err != nil || councilID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid council id is required"})
		return
	}

	placements, err := fc.Service.ListByCouncil(councilID)
	if err != nil {
		fc.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Placements fetched successfully",
		"placements": placements,
	})
}

func (fc *FeaturedController) CancelPlacement(c *gin.Context) {
	idStr := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid placement id is required"})
		return
	}

	p, err := fc.Service.CancelPlacement(uint(id))
	if err != nil {
		fc.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Placement cancelled successfully",
		"placement": p,
	})
}
