package suburb

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, suburbService SuburbServiceAPI) {
	suburbController := &SuburbController{Service: suburbService}

	lookupGroup := r.Group("/api/lookup")
	{
		lookupGroup.GET("/councils", suburbController.GetAllCouncils)
		lookupGroup.GET("/suburbs/:council", suburbController.GetSuburbsByCouncil)
	}
}
