package assist

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, assistService AssistServiceAPI) {
	assistController := &AssistController{AssistService: assistService}

	assistGroup := r.Group("/api/assist")
	{
		assistGroup.POST("/describe", assistController.Describe)
	}
}
