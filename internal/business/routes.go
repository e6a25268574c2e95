package business

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, businessService BusinessServicePort, logService LogServicePort) {
	businessController := &BusinessController{Service: businessService, LogService: logService}

	businessGroup := r.Group("/api/businesses")
	{
		businessGroup.POST("", businessController.CreateBusiness)
		businessGroup.GET("/:id", businessController.GetBusiness)
		businessGroup.PUT("/:id", businessController.UpdateBusiness)
		businessGroup.DELETE("/:id", businessController.DeleteBusiness)
		businessGroup.POST("/:id/claim", businessController.ClaimBusiness)
		businessGroup.POST("/:id/photo", businessController.UploadPhoto)
		businessGroup.GET("/council/:council", businessController.ListByCouncil)
	}
}
