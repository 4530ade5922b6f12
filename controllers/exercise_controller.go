package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guru0072/solo-leveling-ai/services"
)

type ExerciseInput struct {
	Type        string   `json:"type" binding:"required"`
	DurationMin float64  `json:"duration_min"`
	Count       int      `json:"count"`
	Calories    *float64 `json:"calories"`
	Metadata    string   `json:"metadata"`
}

// LogExercise records an exercise for the authenticated user. Calories are
// estimated when the client leaves them out.
func LogExercise(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var input ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.DurationMin <= 0 && input.Count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_min or count required"})
		return
	}

	exercise, err := services.LogExercise(userID, services.ExerciseInput{
		Type:        input.Type,
		DurationMin: input.DurationMin,
		Count:       input.Count,
		Calories:    input.Calories,
		Metadata:    input.Metadata,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "exercise_id": exercise.ID, "calories": exercise.Calories})
}
