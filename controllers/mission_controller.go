package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guru0072/solo-leveling-ai/services"
)

func GenerateMissions(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	missions, err := services.GenerateDailyMissions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, missions)
}

func ListMissions(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	missions, err := services.ListMissions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, missions)
}
