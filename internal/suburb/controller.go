package suburb

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type SuburbController struct {
	Service SuburbServiceAPI
}

func (sc *SuburbController) GetAllCouncils(c *gin.Context) {
	councils, err := sc.Service.GetAllCouncils()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Councils fetched successfully",
		"councils": councils,
	})
}

func (sc *SuburbController) GetSuburbsByCouncil(c *gin.Context) {
	councilIDStr := strings.TrimSpace(c.Param("council"))
	councilID, err := strconv.Atoi(councilIDStr)
	if err != nil || councilID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid council id is required"})
		return
	}

	suburbs, err := sc.Service.GetSuburbsByCouncil(councilID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Suburbs fetched successfully",
		"suburbs": suburbs,
	})
}
