package assist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssistController struct {
	AssistService AssistServiceAPI
}

func (ac *AssistController) Describe(c *gin.Context) {
	var input DescribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	description, err := ac.AssistService.DraftDescription(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}
