package admin

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, adminService AdminServiceAPI, logService LogServicePort) {
	adminController := &AdminController{AdminService: adminService, LogService: logService}

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/stats", adminController.GetDashboardStats)
		adminGroup.GET("/export", adminController.ExportDirectory)
		adminGroup.POST("/import", adminController.ImportLocalities)
	}
}
