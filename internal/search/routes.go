package search

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, searchService SearchServiceAPI) {
	searchController := &SearchController{Service: searchService}

	r.GET("/api/search", searchController.Search)
}
