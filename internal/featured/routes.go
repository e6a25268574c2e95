package featured

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, featuredService FeaturedServiceAPI) {
	featuredController := &FeaturedController{Service: featuredService}

	featuredGroup := r.Group("/api/placements")
	{
		featuredGroup.POST("", featuredController.CreatePlacement)
		featuredGroup.GET("/council/:council", featuredController.ListByCouncil)
		featuredGroup.POST("/:id/cancel", featuredController.CancelPlacement)
	}
}
