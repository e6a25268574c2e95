package search

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	Service SearchServiceAPI
}

func (sc *SearchController) Search(c *gin.Context) {
	req := Request{
		Suburb:   c.Query("suburb"),
		AgeStage: c.Query("age_stage"),
		Page:     1,
		Limit:    DefaultLimit,
	}

	if v := strings.TrimSpace(c.Query("behaviour_issue")); v != "" {
		req.BehaviourIssue = &v
	}

	if s := strings.TrimSpace(c.Query("radius_km")); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius_km must be a non-negative number"})
			return
		}
		req.RadiusKm = &v
	}

	if s := strings.TrimSpace(c.Query("page")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
			return
		}
		req.Page = v
	}

	if s := strings.TrimSpace(c.Query("limit")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		req.Limit = v
	}

	resp, err := sc.Service.RunPublicSearch(req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingSuburb), errors.Is(err, ErrMissingAgeStage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrSuburbNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
