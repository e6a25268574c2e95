package admin

import (
	"errors"
	"net/http"

	"dog-trainers-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type LogServicePort interface {
	Log(entry logs.ActivityLog, metadata interface{}) error
}

type AdminController struct {
	AdminService AdminServiceAPI
	LogService   LogServicePort
}

func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	stats, err := ac.AdminService.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (ac *AdminController) ExportDirectory(c *gin.Context) {
	contentType, filename, data, err := ac.AdminService.ExportDirectory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

func (ac *AdminController) ImportLocalities(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	summary, err := ac.AdminService.ImportLocalities(file)
	if err != nil {
		if errors.Is(err, ErrInvalidFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if ac.LogService != nil {
		_ = ac.LogService.Log(logs.ActivityLog{
			Level:   "info",
			Service: "admin",
			Action:  "localities_imported",
			Message: "suburb spreadsheet imported",
		}, summary)
	}

	c.JSON(http.StatusOK, summary)
}
